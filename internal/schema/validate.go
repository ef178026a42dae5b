package schema

import (
	"strings"
)

// ValidationError reports an OpenAPI document failing the minimal shape check.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid OpenAPI schema: " + e.Reason
}

// requiredKeys are the only top-level keys the document must carry. Deeper
// OpenAPI conformance is the generator's problem, not ours.
var requiredKeys = []string{"openapi", "info", "paths"}

// Validate checks that doc has the minimal OpenAPI shape: the three required
// top-level keys, and an info object containing a title.
func Validate(doc map[string]any) error {
	var missing []string
	for _, k := range requiredKeys {
		if _, ok := doc[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Reason: "missing required fields: " + strings.Join(missing, ", ")}
	}

	info, ok := doc["info"].(map[string]any)
	if !ok {
		return &ValidationError{Reason: "'info' must contain 'title'"}
	}
	if _, ok := info["title"]; !ok {
		return &ValidationError{Reason: "'info' must contain 'title'"}
	}
	return nil
}
