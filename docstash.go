// Package docstash provides a local cache-and-fetch tool for upstream
// documentation files. Identifiers (topics, component names, template file
// paths) resolve through static per-category tables to files in GitHub
// repositories; fetched copies are cached on disk next to a JSON manifest
// that records when and at which revision each document was last fetched,
// so repeated invocations avoid redundant network calls.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., github/, fs/).
package docstash
