// Package typereg resolves Go types by their fully-qualified name and
// constructs zero values of them.
//
// Go has no process-wide type lookup by name, so a host registers the
// element types it wants reachable by name up front:
//
//	types := typereg.New()
//	typereg.Add[pages.Settings](types) // "example.com/app/pages.Settings"
//
//	el, ok := types.ResolveAndConstruct("example.com/app/pages.Settings")
//
// A *Registry satisfies routing.Resolver.
package typereg

import (
	"errors"
	"reflect"
	"sort"
	"sync"

	"github.com/vango-dev/shellroute/pkg/element"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("typereg: nil reflect.Type provided")
	// ErrUnnamedType is returned for types without a name, e.g. anonymous
	// structs or func types.
	ErrUnnamedType = errors.New("typereg: type has no name")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("typereg: empty name provided")
	// ErrConflictingRegistration indicates an attempt to bind a name that is
	// already bound to a different type.
	ErrConflictingRegistration = errors.New("typereg: conflicting type registration")
)

// Registry maps names to types. The zero value is not usable; call New.
type Registry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{types: make(map[string]reflect.Type)}
}

// Add registers T under its qualified name.
func Add[T any](r *Registry) error {
	return r.Register(reflect.TypeFor[T]())
}

// Register binds t under QualifiedName(t). Pointer types are registered by
// their element type. Registering the same pair twice is a no-op.
func (r *Registry) Register(t reflect.Type) error {
	base, err := named(t)
	if err != nil {
		return err
	}
	return r.RegisterAs(QualifiedName(base), base)
}

// RegisterAs binds t under an explicit name, e.g. a short alias.
func (r *Registry) RegisterAs(name string, t reflect.Type) error {
	if name == "" {
		return ErrEmptyName
	}
	base, err := named(t)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.types[name]; ok {
		if old == base {
			return nil
		}
		return ErrConflictingRegistration
	}
	r.types[name] = base
	return nil
}

// Lookup returns the type bound to name.
func (r *Registry) Lookup(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// New constructs a zero value of the type bound to name.
func (r *Registry) New(name string) (any, bool) {
	t, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}
	return Construct(t), true
}

// ResolveAndConstruct constructs the type bound to name and returns it if
// it is an element. Unknown names and non-element types yield false.
func (r *Registry) ResolveAndConstruct(name string) (element.Element, bool) {
	v, ok := r.New(name)
	if !ok {
		return nil, false
	}
	el, ok := v.(element.Element)
	return el, ok
}

// QualifiedName returns the import path qualified name of t, e.g.
// "github.com/vango-dev/app/pages.Settings". Builtin types have no path and
// return just their name. Pointers are removed first.
func QualifiedName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.PkgPath() + "." + t.Name()
}

// Construct returns a pointer to a new zero value of t. A pointer type
// *T yields a new *T as well, so element types work either way.
func Construct(t reflect.Type) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return reflect.New(t).Interface()
}

// named strips pointers and requires a named type.
func named(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNilType
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return nil, ErrUnnamedType
	}
	return t, nil
}
