package main

import (
	"github.com/spf13/cobra"

	"github.com/dlxrun/dlx/internal/cache"
)

var removeCmd = &cobra.Command{
	Use:   "remove URL",
	Short: "Remove the cache entry for a single artifact URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}

		return cache.Remove(cache.NewLayout(cfg.CacheDir), args[0])
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every entry from the cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}

		return cache.Clear(cache.NewLayout(cfg.CacheDir))
	},
}
