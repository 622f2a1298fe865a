//go:build tools

// Package tools documents development tool dependencies.
// These tools are installed via `go install` and are not tracked in go.mod.
package tools

// Development tools:
//
// Air - rebuilds and restarts the server on Go changes; run with DEV=true so
// templates under frontend/templates are re-read from disk.
//   Install: go install github.com/air-verse/air@v1.63.0
//   Docs: https://github.com/air-verse/air
//
// mockgen - regenerates internal/mocks (go generate ./internal/mocks).
//   Install: go install go.uber.org/mock/mockgen@v0.6.0
