package element

import (
	"reflect"
	"sync"
)

// Element is anything that can carry attached properties.
type Element interface {
	Attached() *Properties
}

// Base implements Element and is meant to be embedded.
// The zero value is ready to use.
type Base struct {
	once  sync.Once
	props *Properties
}

// Attached implements Element.
func (b *Base) Attached() *Properties {
	b.once.Do(func() {
		b.props = NewProperties()
	})
	return b.props
}

// Properties holds the attached property values of one element.
// The zero value is an empty store ready to use.
type Properties struct {
	mu     sync.Mutex
	values map[any]any
}

// NewProperties creates an empty property store.
func NewProperties() *Properties {
	return &Properties{values: make(map[any]any)}
}

func (p *Properties) load(key any) (any, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.values[key]
	return v, ok
}

func (p *Properties) store(key, value any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.values == nil {
		p.values = make(map[any]any)
	}
	p.values[key] = value
}

// loadOrCreate returns the stored value for key, calling create and storing
// its result when there is none. create runs with the lock held, so it runs
// at most once per key and must not touch this store.
func (p *Properties) loadOrCreate(key any, create func() any) any {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.values[key]; ok {
		return v
	}
	v := create()
	if p.values == nil {
		p.values = make(map[any]any)
	}
	p.values[key] = v
	return v
}

func (p *Properties) delete(key any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.values, key)
}

// Len returns the number of properties set on the element.
func (p *Properties) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.values)
}

// TypeName returns the runtime type name of e with pointers removed,
// e.g. "SettingsPage" for a *SettingsPage.
func TypeName(e Element) string {
	if e == nil {
		return ""
	}
	t := reflect.TypeOf(e)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
