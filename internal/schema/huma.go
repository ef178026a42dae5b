package schema

import (
	"encoding/json"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// HumaProvider adapts a huma.API to the Provider interface. The document is
// round-tripped through JSON so the hook sees exactly what a client of the
// running server would.
type HumaProvider struct {
	api huma.API
}

// NewHumaProvider wraps api as a schema provider.
func NewHumaProvider(api huma.API) *HumaProvider {
	return &HumaProvider{api: api}
}

// OpenAPISchema renders the API's current OpenAPI document as a generic
// object tree.
func (p *HumaProvider) OpenAPISchema() (map[string]any, error) {
	raw, err := json.Marshal(p.api.OpenAPI())
	if err != nil {
		return nil, fmt.Errorf("marshal OpenAPI document: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode OpenAPI document: %w", err)
	}
	return doc, nil
}
