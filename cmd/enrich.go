package main

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plzgeo/plzgeo/internal/geotable"
	"github.com/plzgeo/plzgeo/internal/sheet"
	"github.com/plzgeo/plzgeo/pkg/overpass"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <spreadsheet.xlsx>",
	Short: "Append coordinate columns for the postal codes in a spreadsheet",
	Long: `Matches the spreadsheet's postal-code column against the postal-code
geodata table and writes Latitude/Longitude values row by row, saving the
file in place. Columns that do not exist yet are inserted right of the
postal-code column. Rows whose postal code is unknown are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		log := zap.L().With(zap.String("command", "enrich"))

		plzColumn, _ := cmd.Flags().GetString("plz-column")
		if plzColumn == "" {
			plzColumn = cfg.Sheet.PLZColumn
		}

		table, _, err := loadGeoTable(cmd)
		if err != nil {
			return err
		}

		wb, err := sheet.Open(path)
		if err != nil {
			return err
		}
		defer wb.Close() //nolint:errcheck

		log.Info("working in active workbook sheet", zap.String("sheet", wb.SheetName()))

		cols, err := sheet.ResolveColumns(wb, plzColumn)
		if err != nil {
			return eris.Wrapf(err, "enrich: %s", path)
		}
		log.Info("resolved columns",
			zap.Int("plz", cols.PLZ),
			zap.Int("latitude", cols.Lat),
			zap.Int("longitude", cols.Lon),
		)

		report, err := sheet.Populate(wb, cols, table)
		if err != nil {
			return eris.Wrapf(err, "enrich: %s", path)
		}

		if err := wb.Save(); err != nil {
			return eris.Wrapf(err, "enrich: %s", path)
		}

		fmt.Printf("%s: %d rows, %d matched, %d without coordinates\n",
			path, report.Rows, report.Matched, len(report.Unmatched))
		return nil
	},
}

func init() {
	enrichCmd.Flags().String("plz-column", "", "header name of the postal-code column (default: from config or PLZ)")
	addGeoFlags(enrichCmd)
	rootCmd.AddCommand(enrichCmd)
}

// addGeoFlags registers the flags shared by commands that build the geo table.
func addGeoFlags(cmd *cobra.Command) {
	cmd.Flags().String("cache", "", "path of the cached geodata payload (default: from config or plz.json)")
	cmd.Flags().String("overpass-url", "", "Overpass interpreter URL (default: from config)")
	cmd.Flags().String("country", "", "2-letter ISO3166-1 country code (default: from config or AT)")
}

// loadGeoTable builds the postal-code lookup table from cache or remote,
// honoring flag overrides of the configured values.
func loadGeoTable(cmd *cobra.Command) (geotable.Table, geotable.Source, error) {
	cachePath, _ := cmd.Flags().GetString("cache")
	if cachePath == "" {
		cachePath = cfg.Cache.Path
	}
	overpassURL, _ := cmd.Flags().GetString("overpass-url")
	if overpassURL == "" {
		overpassURL = cfg.Overpass.URL
	}
	country, _ := cmd.Flags().GetString("country")
	if country == "" {
		country = cfg.Overpass.Country
	}

	client := overpass.NewClient(overpassURL,
		overpass.WithUserAgent(cfg.Overpass.UserAgent),
		overpass.WithTimeout(time.Duration(cfg.Overpass.TimeoutSecs)*time.Second),
	)
	cache := &geotable.FileCache{Path: cachePath}

	return geotable.Load(cmd.Context(), cache, client, country)
}
