// Package output provides output formatting for priced orders and the menu.
// This package produces human and machine-readable outputs.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"snackbar/core/catalog"
	"snackbar/core/ingredient"
	"snackbar/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderOrder writes a priced order
	RenderOrder(w io.Writer, order *types.PricedOrder) error

	// RenderMenu writes the sandwich menu and the ingredient price list
	RenderMenu(w io.Writer, menu []catalog.Entry, prices ingredient.PriceTable) error
}

// Registry manages formatter registration
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry holding the cli and json formatters
func NewRegistry() *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.Register(CLIFormatter{})
	r.Register(JSONFormatter{Indent: "  "})
	return r
}

// Register adds or replaces a formatter
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Format()] = formatter
}

// Get returns the formatter for a format name
func (r *Registry) Get(format string) (Formatter, error) {
	f, ok := r.formatters[Format(strings.ToLower(format))]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q (use %s)", format, strings.Join(r.Formats(), ", "))
	}
	return f, nil
}

// Formats returns the registered format names, sorted
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.formatters))
	for f := range r.formatters {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}
