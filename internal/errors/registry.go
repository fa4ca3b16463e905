package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
	DocURL     string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Route Errors (R001-R009)
	// ============================================

	"R001": {
		Category:   CategoryValidation,
		Message:    "Route contains invalid characters",
		Detail:     "Route names must be 1 to 100 characters long and may only contain letters, digits, and - @ : % . _ + ~ # =",
		Suggestion: "Replace slashes and spaces with '-' or '.'",
		DocURL:     "https://vango.dev/docs/errors/R001",
	},
	"R002": {
		Category:   CategoryRuntime,
		Message:    "Route type is not an element",
		Detail:     "The type registered for this route was constructed, but the value does not implement element.Element.",
		Suggestion: "Embed element.Base in the page type",
		DocURL:     "https://vango.dev/docs/errors/R002",
	},
	"R003": {
		Category: CategoryRuntime,
		Message:  "Implicit route used as comparison target",
		Detail:   "Routes are compared against explicit names. The second argument carried the IMPL_ prefix, which only generated routes may have.",
		DocURL:   "https://vango.dev/docs/errors/R003",
	},
	"R004": {
		Category: CategoryValidation,
		Message:  "Route factory is nil",
		Detail:   "A route must be registered with a non-nil factory or type.",
		DocURL:   "https://vango.dev/docs/errors/R004",
	},

	// ============================================
	// Config Errors (R010-R019)
	// ============================================

	"R010": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration file",
		Detail:     "The configuration file could not be read or parsed.",
		Suggestion: "Check the file for syntax errors",
		DocURL:     "https://vango.dev/docs/errors/R010",
	},
	"R011": {
		Category: CategoryConfig,
		Message:  "Unsupported configuration format",
		Detail:   "Configuration files must end in .json or .toml.",
		DocURL:   "https://vango.dev/docs/errors/R011",
	},
	"R012": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
		Detail:   "Valid levels are debug, info, warn, and error.",
		DocURL:   "https://vango.dev/docs/errors/R012",
	},

	// ============================================
	// CLI Errors (R020-R029)
	// ============================================

	"R020": {
		Category: CategoryCLI,
		Message:  "Route check failed",
		Detail:   "One or more configured routes are invalid or collide.",
		DocURL:   "https://vango.dev/docs/errors/R020",
	},
}

// Register adds a custom error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

// Lookup returns the template for an error code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
