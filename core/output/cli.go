package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"snackbar/core/catalog"
	"snackbar/core/ingredient"
	"snackbar/core/types"
)

// CLIFormatter renders aligned plain-text tables
type CLIFormatter struct{}

// Format returns FormatCLI
func (CLIFormatter) Format() Format {
	return FormatCLI
}

// RenderOrder writes the order breakdown followed by its total
func (CLIFormatter) RenderOrder(w io.Writer, order *types.PricedOrder) error {
	v := NewOrderView(order)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s (%s)\t\t\t%s\n", v.Name, v.Sandwich, v.BasePrice)
	for _, l := range v.Lines {
		fmt.Fprintf(tw, "  + %s x%d\t@ %s\t%s\t%s\n", l.Ingredient, l.Quantity, l.UnitPrice, l.RawCost, l.Cost)
	}
	for _, p := range v.Promotions {
		fmt.Fprintf(tw, "  promo %s\t%s\t\t-%s\n", p.Name, p.Ingredient, p.Discount)
	}
	fmt.Fprintf(tw, "%s\t\t\t\n", strings.Repeat("-", 24))
	fmt.Fprintf(tw, "TOTAL\t\t\t%s\n", v.Total)

	return tw.Flush()
}

// RenderMenu writes sandwiches then ingredients
func (CLIFormatter) RenderMenu(w io.Writer, menu []catalog.Entry, prices ingredient.PriceTable) error {
	v := NewMenuView(menu, prices)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "SANDWICH\tNAME\tRECIPE\tPRICE")
	for i, s := range v.Sandwiches {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Kind, s.Name, recipeString(menu[i].Recipe), s.BasePrice)
	}
	fmt.Fprintln(tw, "\t\t\t")
	fmt.Fprintln(tw, "INGREDIENT\tNAME\t\tPRICE")
	for _, i := range v.Ingredients {
		fmt.Fprintf(tw, "%s\t%s\t\t%s\n", i.Kind, i.Name, i.Price)
	}

	return tw.Flush()
}

func recipeString(r catalog.Recipe) string {
	var parts []string
	for _, k := range ingredient.Kinds() {
		switch n := r.Portions(k); {
		case n == 1:
			parts = append(parts, k.DisplayName())
		case n > 1:
			parts = append(parts, fmt.Sprintf("%dx %s", n, k.DisplayName()))
		}
	}
	return strings.Join(parts, ", ")
}
