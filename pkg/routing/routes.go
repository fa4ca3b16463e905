package routing

import (
	"regexp"
	"strings"

	"github.com/vango-dev/shellroute/internal/errors"
)

// ImplicitPrefix marks route names generated by the framework rather than
// registered by the application.
const ImplicitPrefix = "IMPL_"

// routePattern is the set of route names that may be registered.
var routePattern = regexp.MustCompile(`^[-a-zA-Z0-9@:%._\+~#=]{1,100}$`)

// ValidateRoute reports whether name may be registered: 1 to 100 characters
// from A-Z a-z 0-9 and - @ : % . _ + ~ # =.
func ValidateRoute(name string) bool {
	return routePattern.MatchString(name)
}

// IsImplicit reports whether route carries the implicit prefix.
func IsImplicit(route string) bool {
	return strings.HasPrefix(route, ImplicitPrefix)
}

// GenerateImplicitRoute returns source with the implicit prefix added.
// Routes that already carry it are returned unchanged.
func GenerateImplicitRoute(source string) string {
	if IsImplicit(source) {
		return source
	}
	return ImplicitPrefix + source
}

// CompareRoutes reports whether route equals compare once route's implicit
// prefix is removed, and whether route had one. Matching is exact.
//
// compare must be an explicit route; an implicit one is a programming error
// and panics with ErrImplicitCompare.
func CompareRoutes(route, compare string) (equal, isImplicit bool) {
	return compareRoutes(route, compare, false)
}

func compareRoutes(route, compare string, fold bool) (equal, isImplicit bool) {
	route, isImplicit = strings.CutPrefix(route, ImplicitPrefix)

	if IsImplicit(compare) {
		panic(errors.New("R003").WithSubject(compare))
	}

	if fold {
		return strings.EqualFold(route, compare), isImplicit
	}
	return route == compare, isImplicit
}
