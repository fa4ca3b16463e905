// Package routing implements the route registry used for navigation by name.
//
// A route is a string that stands for a page. Navigation code asks for
// "settings" instead of holding a reference to the settings page type, and
// the registry builds the page on demand.
//
// # Registering Routes
//
// Routes map to a Factory, or to an element type that is constructed fresh
// for every resolution:
//
//	routes := routing.New()
//
//	routes.RegisterRoute("home", routing.FactoryFunc(func() element.Element {
//	    return homePage // shared instance
//	}))
//	routing.RegisterTypeOf[*pages.Settings](routes, "settings")
//
// Route names are 1 to 100 characters from A-Z a-z 0-9 and - @ : % . _ + ~ # =.
// Anything else is rejected with ErrInvalidRoute. Registering an existing
// name replaces it.
//
// # Resolving Routes
//
//	page, err := routes.GetOrCreateContent("settings")
//	if err != nil {
//	    return err
//	}
//	if page == nil {
//	    // nothing is registered for "settings"
//	}
//
// Unregistered routes are tried as fully-qualified type names through the
// Resolver given with WithResolver, typically a *typereg.Registry:
//
//	types := typereg.New()
//	typereg.Add[pages.About](types)
//
//	routes := routing.New(routing.WithResolver(types))
//	page, _ := routes.GetOrCreateContent("example.com/app/pages.About")
//
// # Element Routes
//
// Every resolved element remembers its route in the Route attached property.
// Elements that were never resolved through the registry get a generated
// route on first read:
//
//	routes.GetRoute(page)  // "settings"
//	routes.GetRoute(&pages.Settings{}) // "Settings1"
//
// # Implicit Routes
//
// Routes the framework generates carry ImplicitPrefix. CompareRoutes
// compares such a route against an explicit name:
//
//	equal, implicit := routing.CompareRoutes(routing.GenerateImplicitRoute("home"), "home")
//	// equal == true, implicit == true
//
// # Case
//
// Names are case-sensitive. WithFoldCase(true) lowercases names on
// registration and lookup, and makes Registry.CompareRoutes ignore case.
//
// # Observability
//
// Registries log through log/slog (WithLogger), trace GetOrCreateContent with
// OpenTelemetry (WithTracer), and export Prometheus metrics (WithMetrics).
package routing
