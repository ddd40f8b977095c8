// Package formatter serializes stat responses.
//
// This package is organized into:
// - json.go: JSON encoding of response documents
// - text.go: number formatting for the line protocol
package formatter
