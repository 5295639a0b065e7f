// Package cmd - price command
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"snackbar/core/catalog"
	"snackbar/core/ingredient"
	"snackbar/core/output"
	"snackbar/core/types"
	"snackbar/internal/config"
	pricingerrors "snackbar/internal/errors"
)

var (
	outputFormat string
	additions    []string
)

// priceCmd represents the price command
var priceCmd = &cobra.Command{
	Use:   "price <sandwich>",
	Short: "Price a sandwich, optionally with extra ingredients",
	Long: `Price a sandwich and its additions.

Each --add takes INGREDIENT=QUANTITY, or just INGREDIENT for one portion.
Repeated ingredients are summed.

Examples:
  snackbar price XBURGER
  snackbar price XBURGER --add EGG --add BACON=2
  snackbar price XEGG --add CHEESE=6 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	priceCmd.Flags().StringArrayVarP(&additions, "add", "a", nil, "extra ingredient as INGREDIENT[=QUANTITY]")

	rootCmd.AddCommand(priceCmd)
}

func runPrice(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	sandwich, err := catalog.ParseKind(args[0])
	if err != nil {
		return err
	}

	order := types.Order{Sandwich: sandwich}
	for _, raw := range additions {
		a, err := parseAddition(raw)
		if err != nil {
			return err
		}
		order.Additions = append(order.Additions, a)
	}

	formatter, err := output.NewRegistry().Get(formatOr(cfg))
	if err != nil {
		return err
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	var priced *types.PricedOrder
	if len(order.Additions) == 0 {
		priced, err = eng.PriceSandwich(sandwich)
	} else {
		priced, err = eng.PriceOrder(order)
	}
	if err != nil {
		return err
	}

	return formatter.RenderOrder(cmd.OutOrStdout(), priced)
}

// parseAddition reads INGREDIENT[=QUANTITY]
func parseAddition(raw string) (types.Addition, error) {
	name, qty, hasQty := strings.Cut(raw, "=")

	kind, err := ingredient.ParseKind(name)
	if err != nil {
		return types.Addition{}, err
	}

	quantity := int64(1)
	if hasQty {
		quantity, err = strconv.ParseInt(strings.TrimSpace(qty), 10, 64)
		if err != nil {
			return types.Addition{}, pricingerrors.Wrap(pricingerrors.TypeInput, "invalid quantity in --add "+raw, err)
		}
	}

	return types.Addition{Ingredient: kind, Quantity: quantity}, nil
}

func formatOr(cfg *config.Config) string {
	if outputFormat != "" {
		return outputFormat
	}
	return cfg.Output.DefaultFormat
}
