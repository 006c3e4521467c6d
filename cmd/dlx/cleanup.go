package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dlxrun/dlx/internal/cache"
)

var cleanupMaxAge time.Duration

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove cache entries older than the maximum age",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		maxAge := cleanupMaxAge
		if maxAge < 0 {
			maxAge = cfg.MaxAge
		}

		scanner := cache.NewScanner(cache.NewLayout(cfg.CacheDir), nil, logger)
		removed, err := scanner.Cleanup(maxAge)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "removed %d cache entries\n", removed)
		return nil
	},
}

func init() {
	cleanupCmd.Flags().DurationVar(&cleanupMaxAge, "max-age", -1, "maximum entry age (default from config, 168h)")
}
