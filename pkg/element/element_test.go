package element

import (
	"sync"
	"testing"
)

type page struct {
	Base
}

type valuePage struct {
	Base
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		el   Element
		want string
	}{
		{"pointer", &page{}, "page"},
		{"other", &valuePage{}, "valuePage"},
		{"base", &Base{}, "Base"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeName(tt.el); got != tt.want {
				t.Errorf("TypeName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBaseZeroValue(t *testing.T) {
	var p page
	props := p.Attached()
	if props == nil {
		t.Fatal("Attached() returned nil")
	}
	if p.Attached() != props {
		t.Error("Attached() should return the same store on every call")
	}
	if props.Len() != 0 {
		t.Errorf("Len() = %d, want 0", props.Len())
	}
}

// ownStore keeps its properties in a plain field instead of embedding Base.
type ownStore struct {
	props Properties
}

func (o *ownStore) Attached() *Properties { return &o.props }

func TestZeroValueProperties(t *testing.T) {
	title := NewAttached[string]("Title", "test", nil)
	route := NewAttached("Route", "test", func(Element) string { return "home" })

	o := &ownStore{}
	if got := route.Get(o); got != "home" {
		t.Errorf("Get() with default = %q, want home", got)
	}

	o = &ownStore{}
	title.Set(o, "Settings")
	if got := title.Get(o); got != "Settings" {
		t.Errorf("Get() after Set = %q, want Settings", got)
	}
	if o.props.Len() != 1 {
		t.Errorf("Len() = %d, want 1", o.props.Len())
	}

	title.Clear(&ownStore{})
}

func TestPropertySetGet(t *testing.T) {
	prop := NewAttached[string]("Title", "test", nil)
	p := &page{}

	if got := prop.Get(p); got != "" {
		t.Errorf("Get() on unset property = %q, want empty", got)
	}
	if prop.IsSet(p) {
		t.Error("IsSet() = true before Set, and Get without creator must not store")
	}

	prop.Set(p, "home")
	if got := prop.Get(p); got != "home" {
		t.Errorf("Get() = %q, want %q", got, "home")
	}
	if !prop.IsSet(p) {
		t.Error("IsSet() = false after Set")
	}

	prop.Set(p, "away")
	if got := prop.Get(p); got != "away" {
		t.Errorf("Get() after overwrite = %q, want %q", got, "away")
	}
}

func TestPropertyLazyDefault(t *testing.T) {
	calls := 0
	prop := NewAttached("Counter", "test", func(e Element) int {
		calls++
		return 40 + calls
	})
	p := &page{}

	if prop.IsSet(p) {
		t.Fatal("IsSet() = true before first read")
	}
	first := prop.Get(p)
	second := prop.Get(p)
	if first != 41 || second != 41 {
		t.Errorf("Get() = %d, %d; want 41, 41", first, second)
	}
	if calls != 1 {
		t.Errorf("creator called %d times, want 1", calls)
	}
	if !prop.IsSet(p) {
		t.Error("default value should be stored after first read")
	}

	other := &page{}
	if got := prop.Get(other); got != 42 {
		t.Errorf("Get(other) = %d, want 42", got)
	}
}

func TestPropertyCreatorReceivesElement(t *testing.T) {
	prop := NewAttached("Kind", "test", func(e Element) string {
		return TypeName(e)
	})
	if got := prop.Get(&valuePage{}); got != "valuePage" {
		t.Errorf("Get() = %q, want %q", got, "valuePage")
	}
}

func TestPropertySetSkipsCreator(t *testing.T) {
	called := false
	prop := NewAttached("Route", "test", func(Element) string {
		called = true
		return "generated"
	})
	p := &page{}
	prop.Set(p, "explicit")
	if got := prop.Get(p); got != "explicit" {
		t.Errorf("Get() = %q, want %q", got, "explicit")
	}
	if called {
		t.Error("creator should not run when a value is set")
	}
}

func TestPropertyClear(t *testing.T) {
	n := 0
	prop := NewAttached("N", "test", func(Element) int {
		n++
		return n
	})
	p := &page{}
	if got := prop.Get(p); got != 1 {
		t.Fatalf("Get() = %d, want 1", got)
	}
	prop.Clear(p)
	if prop.IsSet(p) {
		t.Error("IsSet() = true after Clear")
	}
	if got := prop.Get(p); got != 2 {
		t.Errorf("Get() after Clear = %d, want 2", got)
	}
}

func TestPropertiesAreIndependent(t *testing.T) {
	a := NewAttached[string]("Same", "a", nil)
	b := NewAttached[string]("Same", "b", nil)
	p := &page{}

	a.Set(p, "a")
	if b.IsSet(p) {
		t.Error("properties with the same name must not share storage")
	}
	if a.Name() != "Same" || a.Owner() != "a" {
		t.Errorf("Name/Owner = %q/%q", a.Name(), a.Owner())
	}
}

func TestPropertyConcurrentDefault(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	prop := NewAttached("Once", "test", func(Element) int {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return calls
	})
	p := &page{}

	var wg sync.WaitGroup
	results := make([]int, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = prop.Get(p)
		}(i)
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("creator called %d times, want 1", calls)
	}
	for i, r := range results {
		if r != 1 {
			t.Errorf("results[%d] = %d, want 1", i, r)
		}
	}
}
