package output

import (
	"encoding/json"
	"io"

	"snackbar/core/catalog"
	"snackbar/core/ingredient"
	"snackbar/core/types"
)

// JSONFormatter renders the views as JSON
type JSONFormatter struct {
	// Indent is passed to the encoder; empty writes compact JSON
	Indent string
}

// Format returns FormatJSON
func (JSONFormatter) Format() Format {
	return FormatJSON
}

// RenderOrder writes an OrderView
func (f JSONFormatter) RenderOrder(w io.Writer, order *types.PricedOrder) error {
	return f.encode(w, NewOrderView(order))
}

// RenderMenu writes a MenuView
func (f JSONFormatter) RenderMenu(w io.Writer, menu []catalog.Entry, prices ingredient.PriceTable) error {
	return f.encode(w, NewMenuView(menu, prices))
}

func (f JSONFormatter) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if f.Indent != "" {
		enc.SetIndent("", f.Indent)
	}
	return enc.Encode(v)
}
