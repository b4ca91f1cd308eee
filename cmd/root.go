package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Seacant/adjei-sampling/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "adjei-sampling",
	Short: "Randomized matched-pairs comparison of two observation groups",
	Long:  "Repeatedly matches a smaller group against its nearest neighbors in a larger reference group, runs a paired t-test per matching, and reports the distribution of the per-iteration statistics.",
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
