package element

// Property is an attached property definition. Values are stored per element,
// keyed by the definition itself, so two definitions with the same name never
// collide.
type Property[T any] struct {
	name   string
	owner  string
	create func(Element) T
}

// NewAttached declares an attached property. create computes the default
// value for an element that has none; it may be nil, in which case the zero
// value of T is returned and nothing is stored.
func NewAttached[T any](name, owner string, create func(Element) T) *Property[T] {
	return &Property[T]{
		name:   name,
		owner:  owner,
		create: create,
	}
}

// Name returns the property name.
func (p *Property[T]) Name() string { return p.name }

// Owner returns the name of the type that declared the property.
func (p *Property[T]) Owner() string { return p.owner }

// Get returns the value of the property on e.
// The default creator runs at most once per element and its result is kept.
func (p *Property[T]) Get(e Element) T {
	props := e.Attached()
	if p.create == nil {
		v, ok := props.load(p)
		if !ok {
			var zero T
			return zero
		}
		return v.(T)
	}
	return props.loadOrCreate(p, func() any {
		return p.create(e)
	}).(T)
}

// Set overwrites the value of the property on e.
func (p *Property[T]) Set(e Element, value T) {
	e.Attached().store(p, value)
}

// IsSet reports whether e holds a value for the property, either set
// explicitly or created by an earlier Get.
func (p *Property[T]) IsSet(e Element) bool {
	_, ok := e.Attached().load(p)
	return ok
}

// Clear removes the value from e. The next Get creates a fresh default.
func (p *Property[T]) Clear(e Element) {
	e.Attached().delete(p)
}
