package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://jst.vango.dev/docs/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (J001-J019)
	// ============================================

	"J001": {
		Category: CategoryConfig,
		Message:  "Component has no render function",
		Detail:   "A component must be built from a Renderer or filled with a render function before it is included in a tree.",
		DocURL:   docBase + "J001",
	},
	"J002": {
		Category: CategoryConfig,
		Message:  "Fill expects a render function",
		Detail:   "Fill was called with a nil function.",
		DocURL:   docBase + "J002",
	},
	"J003": {
		Category: CategoryConfig,
		Message:  "Malformed form descriptor",
		Detail:   "A form element needs a name, id or ref attribute to be registered with its component.",
		DocURL:   docBase + "J003",
	},
	"J004": {
		Category: CategoryConfig,
		Message:  "Malformed style descriptor",
		Detail:   "A CSS bundle contained a value that cannot be turned into a rule.",
		DocURL:   docBase + "J004",
	},
	"J005": {
		Category: CategoryConfig,
		Message:  "Render target missing",
		Detail:   "The engine needs a dom.Document to bind nodes.",
		DocURL:   docBase + "J005",
	},
	"J010": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The jst configuration file could not be parsed.",
		DocURL:   docBase + "J010",
	},
	"J011": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range.",
		DocURL:   docBase + "J011",
	},
	"J012": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No jst.json, jst.yaml or jst.yml was found.",
		DocURL:   docBase + "J012",
	},

	// ============================================
	// Invariant Violations (J020-J039)
	// ============================================

	"J020": {
		Category: CategoryInvariant,
		Message:  "Component reference count below zero",
		Detail:   "A component was released more times than it was included. This is a bug in reconciliation bookkeeping.",
		DocURL:   docBase + "J020",
	},
	"J021": {
		Category: CategoryInvariant,
		Message:  "Node reference count below zero",
		Detail:   "A node was released more times than it was included. This is a bug in reconciliation bookkeeping.",
		DocURL:   docBase + "J021",
	},
	"J022": {
		Category: CategoryInvariant,
		Message:  "Component used after teardown",
		Detail:   "A torn-down component cannot be included or refreshed again.",
		DocURL:   docBase + "J022",
	},
	"J023": {
		Category: CategoryInvariant,
		Message:  "Deleted node bound",
		Detail:   "A node whose last reference was released was asked to bind to the render target.",
		DocURL:   docBase + "J023",
	},

	// ============================================
	// Render Errors (J040-J059)
	// ============================================

	"J040": {
		Category: CategoryRender,
		Message:  "Render pass aborted",
		Detail:   "A component failed while the engine was rendering or reconciling.",
		DocURL:   docBase + "J040",
	},
	"J041": {
		Category: CategoryRender,
		Message:  "Serialization failed",
		Detail:   "The markup writer returned an error.",
		DocURL:   docBase + "J041",
	},

	// ============================================
	// Target Errors (J060-J079)
	// ============================================

	"J060": {
		Category: CategoryTarget,
		Message:  "Host node has no parent",
		Detail:   "The operation needs the host node to be attached to a parent in the render target.",
		DocURL:   docBase + "J060",
	},
	"J061": {
		Category: CategoryTarget,
		Message:  "Publish failed",
		Detail:   "The rendered page could not be written to the publish store.",
		DocURL:   docBase + "J061",
	},

	// ============================================
	// CLI Errors (J080-J099)
	// ============================================

	"J080": {
		Category: CategoryCLI,
		Message:  "Unknown demo",
		Detail:   "The requested demo application does not exist.",
		DocURL:   docBase + "J080",
	},
	"J081": {
		Category: CategoryCLI,
		Message:  "Missing publish destination",
		Detail:   "Publishing needs an output directory or an S3 bucket.",
		DocURL:   docBase + "J081",
	},
	"J082": {
		Category: CategoryCLI,
		Message:  "Unknown error code",
		Detail:   "The requested code is not registered. Run jst explain without arguments to list every code.",
		DocURL:   docBase + "J082",
	},
}

// Codes returns every registered error code in ascending order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
