// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders finalized process reports. Formatters register
// themselves in the default registry from their package init, so importing
// a format package is enough to make it available.
package formatters

import (
	"fmt"
	"strings"

	"lgpd-scan/internal/report"
)

// Options configures report rendering.
type Options struct {
	NoColor bool // disable colored output
	Verbose bool // include recommendations and compliance details
}

// Formatter renders one output format.
type Formatter interface {
	// Format renders the report.
	Format(r *report.ProcessReport, options Options) (string, error)
	// Name returns the format name, e.g. "json".
	Name() string
	// Description returns a one-line description of the output.
	Description() string
	// FileExtension returns the recommended extension, e.g. ".json".
	FileExtension() string
}

// Registry holds registered formatters.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// Register adds a formatter.
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Name()] = f
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	f, ok := r.formatters[name]
	return f, ok
}

// List returns the registered format names.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter to the default registry.
func Register(f Formatter) {
	DefaultRegistry.Register(f)
}

// Get retrieves a formatter from the default registry.
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List returns the default registry's format names.
func List() []string {
	return DefaultRegistry.List()
}

// Export renders r in the named format from the default registry.
func Export(format string, r *report.ProcessReport, options Options) (string, error) {
	f, ok := Get(format)
	if !ok {
		return "", fmt.Errorf("unsupported format %q. Available formats: %s",
			format, strings.Join(List(), ", "))
	}
	return f.Format(r, options)
}
