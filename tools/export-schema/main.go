// export-schema writes the demo API's OpenAPI document to disk so client
// toolchains can consume it without a running dev server.
package main

import (
	"flag"
	"log"

	"github.com/apibridge/tsgen/internal/demoapi"
	"github.com/apibridge/tsgen/internal/export"
	"github.com/apibridge/tsgen/internal/schema"
)

func main() {
	log.SetFlags(0) // Remove timestamp from logs

	out := flag.String("out", "openapi.yaml", "output file (.json or .yaml)")
	flag.Parse()

	if err := run(*out); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(path string) error {
	api, _ := demoapi.New("dev")

	log.Printf("Writing OpenAPI document to %s...", path)
	if err := export.WriteSchemaFile(schema.NewHumaProvider(api), path); err != nil {
		return err
	}

	log.Println("Done.")
	return nil
}
