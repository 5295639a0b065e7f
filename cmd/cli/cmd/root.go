// Package cmd provides the CLI commands for snackbar.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"snackbar/adapters/menu"
	"snackbar/core/catalog"
	"snackbar/core/engine"
	"snackbar/core/ingredient"
	"snackbar/core/promotion"
	"snackbar/internal/config"
	"snackbar/internal/logging"
)

const version = "1.0.0"

var (
	cfgFile  string
	menuFile string
	verbose  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "snackbar",
	Short: "Price snack bar orders",
	Long: `snackbar prices sandwiches and their extra ingredients,
applying the house promotions.

Examples:
  snackbar menu
  snackbar price XBACON
  snackbar price XEGG --add PATTY=3 --add LETTUCE=2 --add CHEESE=5
  snackbar serve --addr :8080`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON)")
	rootCmd.PersistentFlags().StringVar(&menuFile, "menu", "", "HCL menu file overriding ingredient prices")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.LoadEnv()
	if menuFile != "" {
		cfg.Menu.Path = menuFile
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// buildEngine wires the catalog, the optional menu file and the promotions
func buildEngine(cfg *config.Config) (*engine.Engine, error) {
	var prices ingredient.PriceTable = ingredient.DefaultTable{}
	if cfg.Menu.Path != "" {
		table, err := menu.NewLoader(logging.Named("menu")).LoadFile(cfg.Menu.Path)
		if err != nil {
			return nil, err
		}
		prices = table
		logging.Info("loaded menu", zap.String("path", cfg.Menu.Path))
	}

	return engine.New(
		catalog.New(prices),
		promotion.DefaultRegistry(),
		engine.WithLogger(logging.Named("engine")),
	), nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "snackbar version %s\n", version)
	},
}
