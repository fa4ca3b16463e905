// Package errors provides structured, actionable error messages for the
// route registry and its tooling.
//
// Every error has a code (e.g. "R001") mapped to a registered template:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Error Categories
//
//   - validation: bad input such as an invalid route name
//   - runtime: misuse detected while resolving or comparing routes
//   - config: configuration files that cannot be loaded
//   - cli: command failures
//
// # Matching
//
// errors.Is matches VangoErrors by code, so a freshly built error can be
// compared against a package-level sentinel:
//
//	var ErrInvalidRoute = errors.New("R001")
//
//	err := errors.New("R001").WithSubject("bad route")
//	stderrors.Is(err, ErrInvalidRoute) // true
//
// # Usage
//
//	err := errors.New("R001").
//	    WithSubject("users/profile").
//	    WithSuggestion("Use users.profile instead")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR R001: Route contains invalid characters
//	//
//	//   "users/profile"
//	//
//	//   Route names must be 1 to 100 characters long and may only contain
//	//   letters, digits, and - @ : % . _ + ~ # =
//	//
//	//   Hint: Use users.profile instead
//	//
//	//   Learn more: https://vango.dev/docs/errors/R001
package errors
