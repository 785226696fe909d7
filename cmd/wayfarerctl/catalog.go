package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wayfarerhq/wayfarer/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate destination catalogs",
	Long: `Inspect and validate Wayfarer destination catalogs.

A catalog is a versioned YAML document listing every bookable
destination. The app ships an embedded copy; these commands run the
same checks against catalog files on disk before they are embedded.`,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a catalog YAML file",
	Long: `Validate a catalog YAML file.

Runs the same checks the app applies to its embedded catalog: a
supported schema version, unique non-empty slugs, display names,
coordinates within range, and known price bands. The command fails on
the first problem found.`,
	Example: `  # Validate the catalog source before embedding it
  wayfarerctl catalog validate internal/catalog/catalog.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogValidate,
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Summarize a catalog",
	Long: `Summarize a catalog: destination and country counts, plus the
breakdown per price band.

Without a file argument the command reports on the catalog embedded in
this build.`,
	Example: `  # Summarize the embedded catalog
  wayfarerctl catalog stats

  # Summarize a catalog file on disk
  wayfarerctl catalog stats internal/catalog/catalog.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogStats,
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogStatsCmd)
}

// loadCatalogArg loads the catalog named by args, falling back to the
// embedded copy when no file is given.
func loadCatalogArg(args []string) (*catalog.Catalog, string, error) {
	if len(args) == 0 {
		c, err := catalog.Default()
		return c, "embedded catalog", err
	}
	c, err := catalog.Load(args[0])
	return c, args[0], err
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	c, name, err := loadCatalogArg(args)
	if err != nil {
		return err
	}

	stats := c.ComputeStats()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d destinations, %d countries, no problems found\n",
		name, stats.Destinations, stats.Countries)
	return nil
}

func runCatalogStats(cmd *cobra.Command, args []string) error {
	c, name, err := loadCatalogArg(args)
	if err != nil {
		return err
	}

	stats := c.ComputeStats()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Catalog:      %s (version %d)\n", name, c.Version)
	fmt.Fprintf(out, "Destinations: %d\n", stats.Destinations)
	fmt.Fprintf(out, "Countries:    %d\n", stats.Countries)
	fmt.Fprintln(out, "Price bands:")

	bands := make([]string, 0, len(stats.ByPriceBand))
	for band := range stats.ByPriceBand {
		bands = append(bands, band)
	}
	sort.Strings(bands)
	for _, band := range bands {
		fmt.Fprintf(out, "  %-8s %2d  %s\n", band, stats.ByPriceBand[band], catalog.PriceBandDefinitions[band])
	}
	return nil
}
