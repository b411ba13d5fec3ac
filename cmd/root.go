package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sf-asset-bridge/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "sf-asset-bridge",
	Short: "Bridge between Salesforce and asset product-line matching",
	Long:  "HTTP API that validates asset identification data, enriches failed fields via a simulated Salesforce lookup, and returns a best-effort product line match with an explanation.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
