package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plzgeo/plzgeo/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "plzgeo",
	Short: "Enrich spreadsheets with postal-code coordinates",
	Long:  "Looks up each row's postal code in a locally cached Overpass geodata table and writes Latitude/Longitude columns back into the spreadsheet in place.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := c.Validate(); err != nil {
			return err
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
