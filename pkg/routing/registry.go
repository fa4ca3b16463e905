package routing

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/vango-dev/shellroute/internal/errors"
	"github.com/vango-dev/shellroute/pkg/element"
	"go.opentelemetry.io/otel/trace"
)

// Registry maps route names to the factories that build their elements.
// It is safe for concurrent use, but a register followed by a lookup from
// different goroutines is not atomic as a pair.
//
// The zero value is not usable; call New.
type Registry struct {
	mu     sync.RWMutex
	routes map[string]Factory

	// count feeds default route names and is never reset.
	count atomic.Uint64

	foldCase bool
	resolver Resolver
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer

	routeProp *element.Property[string]
}

// Option configures a Registry.
type Option func(*Registry)

// WithFoldCase makes route names case-insensitive. Names are lowercased on
// registration and lookup, and Registry.CompareRoutes ignores case.
func WithFoldCase(fold bool) Option {
	return func(r *Registry) {
		r.foldCase = fold
	}
}

// WithResolver sets the resolver used when a route is not registered.
// Without one, unregistered routes resolve to nothing.
func WithResolver(resolver Resolver) Option {
	return func(r *Registry) {
		r.resolver = resolver
	}
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// WithTracer sets the tracer. Default: the global OpenTelemetry provider's
// "vango/routing" tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Registry) {
		r.tracer = tracer
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		routes: make(map[string]Factory),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.tracer == nil {
		r.tracer = defaultTracer()
	}
	r.routeProp = element.NewAttached("Route", "Routing", r.defaultRoute)
	return r
}

// defaultRoute names an element that was never given a route.
func (r *Registry) defaultRoute(e element.Element) string {
	r.metrics.recordGenerated()
	return element.TypeName(e) + strconv.FormatUint(r.count.Add(1), 10)
}

func (r *Registry) normalize(route string) string {
	if r.foldCase {
		return strings.ToLower(route)
	}
	return route
}

// RegisterRoute registers factory under name, replacing any previous
// registration. It returns ErrInvalidRoute if name fails ValidateRoute.
func (r *Registry) RegisterRoute(name string, factory Factory) error {
	if err := r.validate(name); err != nil {
		return err
	}
	if isNil(factory) {
		return errors.New("R004").WithSubject(name)
	}
	r.store(name, factory, "factory")
	return nil
}

// RegisterType registers name to construct a new zero value of t on every
// resolution. t must be an element type; otherwise resolving the route
// returns ErrTypeMismatch.
func (r *Registry) RegisterType(name string, t reflect.Type) error {
	if err := r.validate(name); err != nil {
		return err
	}
	if t == nil {
		return errors.New("R004").WithSubject(name)
	}
	r.store(name, &typeFactory{typ: t}, "type")
	return nil
}

// RegisterTypeOf registers name to construct a new T on every resolution.
func RegisterTypeOf[T element.Element](r *Registry, name string) error {
	return r.RegisterType(name, reflect.TypeFor[T]())
}

func (r *Registry) validate(name string) error {
	if ValidateRoute(name) {
		return nil
	}
	r.metrics.recordInvalid()
	return errors.New("R001").WithSubject(name)
}

func (r *Registry) store(name string, factory Factory, kind string) {
	key := r.normalize(name)

	r.mu.Lock()
	_, replaced := r.routes[key]
	r.routes[key] = factory
	r.metrics.recordRegistration(kind, len(r.routes))
	r.mu.Unlock()

	r.logger.Debug("route registered",
		"route", key,
		"kind", kind,
		"replaced", replaced,
	)
}

// UnregisterRoute removes name and reports whether it was registered.
func (r *Registry) UnregisterRoute(name string) bool {
	key := r.normalize(name)

	r.mu.Lock()
	_, ok := r.routes[key]
	delete(r.routes, key)
	r.metrics.setRoutes(len(r.routes))
	r.mu.Unlock()

	if ok {
		r.logger.Debug("route unregistered", "route", key)
	}
	return ok
}

// Clear removes every route. Default route numbering continues where it was.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.routes = make(map[string]Factory)
	r.metrics.setRoutes(0)
	r.mu.Unlock()
}

// Routes returns the registered route names in sorted order.
func (r *Registry) Routes() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of registered routes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.routes)
}

// GetOrCreateContent is GetOrCreateContentContext with a background context.
func (r *Registry) GetOrCreateContent(route string) (element.Element, error) {
	return r.GetOrCreateContentContext(context.Background(), route)
}

// GetOrCreateContentContext returns the element for route.
//
// The registered factory is tried first. If there is none, or it returns no
// element, route is handed to the resolver as a fully-qualified type name.
// The element found either way gets route as its Route property.
//
// Resolution runs under a span started from ctx. Factories implementing
// ContextFactory receive the span's context, so spans they start are its
// children.
//
// A route that resolves to nothing returns (nil, nil). Errors come only from
// factories, e.g. ErrTypeMismatch.
func (r *Registry) GetOrCreateContentContext(ctx context.Context, route string) (element.Element, error) {
	route = r.normalize(route)

	ctx, span := r.startResolve(ctx, route)

	el, source, err := r.resolve(ctx, route)
	if err != nil {
		r.metrics.recordResolutionError()
		r.logger.Warn("route factory failed", "route", route, "error", err)
		endResolve(span, source, err)
		return nil, fmt.Errorf("routing: resolve %q: %w", route, err)
	}

	if el != nil {
		r.SetRoute(el, route)
	}

	r.metrics.recordResolution(source)
	r.logger.Debug("route resolved", "route", route, "source", source)
	endResolve(span, source, nil)
	return el, nil
}

func (r *Registry) resolve(ctx context.Context, route string) (element.Element, string, error) {
	r.mu.RLock()
	factory, ok := r.routes[route]
	r.mu.RUnlock()

	if ok {
		el, err := create(ctx, factory)
		if err != nil {
			return nil, sourceRegistry, err
		}
		if !isNil(el) {
			return el, sourceRegistry, nil
		}
	}

	if r.resolver != nil {
		if el, ok := r.resolver.ResolveAndConstruct(route); ok && !isNil(el) {
			return el, sourceType, nil
		}
	}

	return nil, sourceNone, nil
}

// RouteProperty returns the attached property holding an element's route.
func (r *Registry) RouteProperty() *element.Property[string] {
	return r.routeProp
}

// GetRoute returns the route of e. An element without one is given a
// default route on first read, its type name followed by a number unique
// within this registry, e.g. "SettingsPage3".
func (r *Registry) GetRoute(e element.Element) string {
	return r.routeProp.Get(e)
}

// SetRoute overwrites the route of e.
func (r *Registry) SetRoute(e element.Element, route string) {
	r.routeProp.Set(e, route)
}

// CompareRoutes is the package-level CompareRoutes under the registry's
// case policy.
func (r *Registry) CompareRoutes(route, compare string) (equal, isImplicit bool) {
	return compareRoutes(route, compare, r.foldCase)
}
