//go:build generate
// +build generate

// Package main provides the central entry point for code generation in this
// project. Running `go generate -tags generate ./...` refreshes the checked-in
// OpenAPI document from the demo API.
//
// The actual logic is implemented in tools/export-schema/.
package main

// Export the demo API's OpenAPI document
//go:generate go run ./tools/export-schema -out openapi.yaml
