// Package menu loads ingredient price overrides from an HCL menu file:
//
//	ingredient "BACON" {
//	  price = "2.20"
//	}
//
// Ingredients that are not listed keep the house price.
package menu

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"snackbar/core/ingredient"
	pricingerrors "snackbar/internal/errors"
)

type menuFile struct {
	Ingredients []ingredientBlock `hcl:"ingredient,block"`
}

type ingredientBlock struct {
	Kind  string `hcl:"kind,label"`
	Price string `hcl:"price"`
}

// Loader parses menu files
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a loader; a nil logger discards output
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// LoadFile reads path and returns the house prices with the file's overrides applied
func (l *Loader) LoadFile(path string) (*ingredient.Table, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, pricingerrors.Parsing("failed to read menu file "+path, err)
	}
	return l.Load(src, path)
}

// Load parses src, naming it filename in diagnostics
func (l *Loader) Load(src []byte, filename string) (*ingredient.Table, error) {
	overrides, err := l.Parse(src, filename)
	if err != nil {
		return nil, err
	}
	return ingredient.Override(ingredient.DefaultTable{}, overrides), nil
}

// Parse returns only the prices the file sets
func (l *Loader) Parse(src []byte, filename string) (map[ingredient.Kind]decimal.Decimal, error) {
	// hclparse.Parser caches by filename, so every parse gets a fresh one
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, pricingerrors.Parsing("invalid menu file "+filename, diagError(diags))
	}

	var mf menuFile
	if diags := gohcl.DecodeBody(file.Body, nil, &mf); diags.HasErrors() {
		return nil, pricingerrors.Parsing("invalid menu file "+filename, diagError(diags))
	}

	overrides := make(map[ingredient.Kind]decimal.Decimal, len(mf.Ingredients))
	for _, block := range mf.Ingredients {
		kind, err := ingredient.ParseKind(block.Kind)
		if err != nil {
			return nil, pricingerrors.Parsing(filename, err)
		}
		if _, dup := overrides[kind]; dup {
			return nil, pricingerrors.Parsing(filename, fmt.Errorf("ingredient %s is declared more than once", kind))
		}

		price, err := decimal.NewFromString(block.Price)
		if err != nil {
			return nil, pricingerrors.Parsing(filename, fmt.Errorf("ingredient %s: invalid price %q: %w", kind, block.Price, err))
		}
		if price.IsNegative() {
			return nil, pricingerrors.Parsing(filename, fmt.Errorf("ingredient %s: price must not be negative", kind))
		}

		overrides[kind] = price
		l.logger.Debug("menu price override",
			zap.Stringer("ingredient", kind),
			zap.String("price", price.StringFixed(2)),
			zap.String("file", filename))
	}

	return overrides, nil
}

// diagError keeps the first error diagnostic with its file:line position
func diagError(diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		if diag.Subject != nil {
			return fmt.Errorf("%s:%d: %s: %s", diag.Subject.Filename, diag.Subject.Start.Line, diag.Summary, diag.Detail)
		}
		return fmt.Errorf("%s: %s", diag.Summary, diag.Detail)
	}
	return diags
}
