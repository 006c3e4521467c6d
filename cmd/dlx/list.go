package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dlxrun/dlx/internal/cache"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached binaries with age and size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}

		lister := cache.NewLister(cache.NewLayout(cfg.CacheDir), nil)
		entries, err := lister.Entries()
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "cache is empty")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tBINARY\tPLATFORM\tAGE\tSIZE\tURL")
		for _, e := range entries {
			fmt.Fprintf(w, "%.12s\t%s\t%s/%s\t%s\t%d\t%s\n",
				e.ID, e.Binary, e.Platform, e.Arch, e.Age.Round(time.Second), e.Size, e.URL)
		}
		return w.Flush()
	},
}
