// Package schema defines the capability a host application exposes so the
// generation hook can obtain its OpenAPI document, the locator registry
// through which providers are resolved, and the minimal shape validation
// applied before anything is generated.
package schema

// Provider is implemented by values that can produce an OpenAPI document.
type Provider interface {
	// OpenAPISchema returns the current OpenAPI document as a generic
	// object tree ready for JSON serialization.
	OpenAPISchema() (map[string]any, error)
}
