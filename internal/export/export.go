// Package export writes the host application's OpenAPI document to a spec
// file so other toolchains can consume it without a running server.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/apibridge/tsgen/internal/schema"
)

// WriteSchemaFile fetches and validates the provider's document, then
// writes it to path. The extension picks the encoding: .yaml/.yml for YAML,
// anything else JSON.
func WriteSchemaFile(p schema.Provider, path string) error {
	doc, err := p.OpenAPISchema()
	if err != nil {
		return fmt.Errorf("fetching OpenAPI schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return err
	}

	var raw []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raw, err = yaml.Marshal(doc)
	default:
		raw, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding OpenAPI document: %w", err)
	}

	return os.WriteFile(path, raw, 0o644)
}
