// Package cmd - menu command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"snackbar/core/output"
	"snackbar/internal/config"
)

// menuCmd prints the sandwiches and the ingredient price list
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show sandwiches and ingredient prices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		formatter, err := output.NewRegistry().Get(formatOr(cfg))
		if err != nil {
			return err
		}

		eng, err := buildEngine(cfg)
		if err != nil {
			return fmt.Errorf("failed to build engine: %w", err)
		}

		cat := eng.Catalog()
		return formatter.RenderMenu(cmd.OutOrStdout(), cat.Entries(), cat.Prices())
	},
}

func init() {
	menuCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")

	rootCmd.AddCommand(menuCmd)
}
