package devserver

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
)

// NewAPI creates a huma API over a fresh ServeMux. Huma's own document and
// docs routes are disabled; RegisterDocsEndpoints serves them instead, so
// the browser reads the same provider-backed document the generator hashes.
func NewAPI(title, version string) (huma.API, *http.ServeMux) {
	mux := http.NewServeMux()

	cfg := huma.DefaultConfig(title, version)
	cfg.OpenAPIPath = ""
	cfg.DocsPath = ""

	return humago.New(mux, cfg), mux
}
