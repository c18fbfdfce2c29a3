// pixelrunner hosts server-simulated platformer sessions over websockets.
//
// Usage:
//
//	pixelrunner serve    - Start the session host
//	pixelrunner check    - Validate levels and animation tables
//
// Global flags:
//
//	--levels <dir>       - Directory holding .tmx levels (default: assets/levels)
//	--config <file>      - YAML file overriding default tuning values
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/automoto/pixelrunner/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagLevels   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixelrunner",
	Short: "Pixelrunner - server-simulated 2D platformer",
	Long: `Pixelrunner simulates one platformer session per connected client and
streams the resulting frames over a websocket connection.

Examples:
  pixelrunner serve --port 7373
  pixelrunner serve --levels ./levels --level level1 --tick 80ms
  pixelrunner check --levels ./levels`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		log.SetLevel(level)
		return config.Load(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "assets/levels", "Directory holding .tmx levels")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML file overriding default tuning values")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
}
