package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Build or refresh the local postal-code geodata cache",
	Long: `Fetches the postal-code geodata for the configured country and stores the
raw payload in the cache file, so later enrich runs skip the network call.
With an existing cache this is a no-op unless --refresh is given.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		refresh, _ := cmd.Flags().GetBool("refresh")
		if refresh {
			cachePath, _ := cmd.Flags().GetString("cache")
			if cachePath == "" {
				cachePath = cfg.Cache.Path
			}
			if err := os.Remove(cachePath); err != nil && !os.IsNotExist(err) {
				return err
			}
		}

		table, source, err := loadGeoTable(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("geodata table ready: %d postal codes (%s)\n", len(table), source)
		return nil
	},
}

func init() {
	addGeoFlags(fetchCmd)
	fetchCmd.Flags().Bool("refresh", false, "discard an existing cache and refetch")
	rootCmd.AddCommand(fetchCmd)
}
