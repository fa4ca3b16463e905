package routing

import (
	"github.com/vango-dev/shellroute/internal/errors"
)

// Errors returned by the registry. Match them with errors.Is; returned
// errors carry the offending route or type as their subject.
var (
	// ErrInvalidRoute is returned when a route name fails ValidateRoute.
	ErrInvalidRoute = errors.New("R001")

	// ErrTypeMismatch is returned when a type registered with RegisterType
	// does not construct an element.
	ErrTypeMismatch = errors.New("R002")

	// ErrImplicitCompare is the panic value of CompareRoutes when the
	// comparison target is an implicit route.
	ErrImplicitCompare = errors.New("R003")

	// ErrNilFactory is returned when registering a nil factory or type.
	ErrNilFactory = errors.New("R004")
)
