package routing

import (
	"context"
	"reflect"

	"github.com/vango-dev/shellroute/internal/errors"
	"github.com/vango-dev/shellroute/pkg/element"
	"github.com/vango-dev/shellroute/pkg/typereg"
)

// Factory produces the element for a route.
//
// GetOrCreate may return a shared instance or a new one on every call. A nil
// element with a nil error means the factory has nothing for the route, and
// resolution continues with the type fallback.
type Factory interface {
	GetOrCreate() (element.Element, error)
}

// FactoryFunc is a function adapter for Factory.
type FactoryFunc func() element.Element

// GetOrCreate implements Factory.
func (f FactoryFunc) GetOrCreate() (element.Element, error) {
	return f(), nil
}

// ContextFactory is a Factory that takes the context of the resolution,
// including its trace span.
type ContextFactory interface {
	Factory
	GetOrCreateContext(ctx context.Context) (element.Element, error)
}

// ContextFactoryFunc is a function adapter for ContextFactory.
type ContextFactoryFunc func(ctx context.Context) element.Element

// GetOrCreate implements Factory with a background context.
func (f ContextFactoryFunc) GetOrCreate() (element.Element, error) {
	return f(context.Background()), nil
}

// GetOrCreateContext implements ContextFactory.
func (f ContextFactoryFunc) GetOrCreateContext(ctx context.Context) (element.Element, error) {
	return f(ctx), nil
}

func create(ctx context.Context, f Factory) (element.Element, error) {
	if cf, ok := f.(ContextFactory); ok {
		return cf.GetOrCreateContext(ctx)
	}
	return f.GetOrCreate()
}

// typeFactory constructs a new zero value of a type on every call.
type typeFactory struct {
	typ reflect.Type
}

// GetOrCreate implements Factory.
func (f *typeFactory) GetOrCreate() (element.Element, error) {
	el, ok := typereg.Construct(f.typ).(element.Element)
	if !ok {
		return nil, errors.New("R002").WithSubject(typereg.QualifiedName(f.typ))
	}
	return el, nil
}

// Resolver finds and constructs an element type by its fully-qualified name.
// It backs the type-name fallback of GetOrCreateContent; a *typereg.Registry
// is the usual implementation.
type Resolver interface {
	ResolveAndConstruct(name string) (element.Element, bool)
}

// ResolverFunc is a function adapter for Resolver.
type ResolverFunc func(name string) (element.Element, bool)

// ResolveAndConstruct implements Resolver.
func (f ResolverFunc) ResolveAndConstruct(name string) (element.Element, bool) {
	return f(name)
}

// isNil reports whether v is nil or an interface holding a nil pointer,
// func, or map.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map:
		return rv.IsNil()
	}
	return false
}
