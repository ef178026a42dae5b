package devserver

import (
	"encoding/json"
	"net/http"

	_ "github.com/swaggo/files"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/apibridge/tsgen/internal/schema"
)

// RegisterDocsEndpoints serves the live OpenAPI document at /openapi.json
// and a Swagger UI at /docs/ backed by it.
func RegisterDocsEndpoints(mux *http.ServeMux, provider schema.Provider) {
	mux.HandleFunc("/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		doc, err := provider.OpenAPISchema()
		if err != nil {
			http.Error(w, "Failed to build OpenAPI document", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(doc)
	})

	mux.HandleFunc("/docs", func(w http.ResponseWriter, r *http.Request) {
		// When accessed directly, redirect to the UI path
		http.Redirect(w, r, "/docs/", http.StatusFound)
	})
	mux.Handle("/docs/", httpSwagger.Handler(
		httpSwagger.URL("/openapi.json"),
		httpSwagger.DeepLinking(true),
	))
}
