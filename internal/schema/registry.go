package schema

import (
	"fmt"
	"sync"
)

// ResolutionError reports a locator with no registered value.
type ResolutionError struct {
	Locator string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no schema provider registered for locator %q; check that TSGEN_API is correct", e.Locator)
}

// InterfaceError reports a registered value that lacks the Provider capability.
type InterfaceError struct {
	Locator string
	Value   any
}

func (e *InterfaceError) Error() string {
	return fmt.Sprintf("value registered for locator %q (%T) does not expose an OpenAPI schema accessor", e.Locator, e.Value)
}

// Registry maps dotted locator strings to schema providers. Hosts register
// their API objects at init time; the generation hook resolves the
// configured locator against it.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]any)}
}

// Register stores v under locator, replacing any previous entry. The value
// is checked for the Provider capability at resolve time, not here, so the
// distinction between a missing entry and a wrong-shaped one survives.
func (r *Registry) Register(locator string, v any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[locator] = v
}

// Resolve looks up locator and asserts the Provider capability.
func (r *Registry) Resolve(locator string) (Provider, error) {
	r.mu.RLock()
	v, ok := r.entries[locator]
	r.mu.RUnlock()

	if !ok {
		return nil, &ResolutionError{Locator: locator}
	}
	p, ok := v.(Provider)
	if !ok {
		return nil, &InterfaceError{Locator: locator, Value: v}
	}
	return p, nil
}

var defaultRegistry = NewRegistry()

// Register adds a value to the process-wide registry.
func Register(locator string, v any) {
	defaultRegistry.Register(locator, v)
}

// Resolve resolves a locator against the process-wide registry.
func Resolve(locator string) (Provider, error) {
	return defaultRegistry.Resolve(locator)
}
