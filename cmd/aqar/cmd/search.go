package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aqarhub/aqarfinder/pkg/types"
)

func searchCmd() *cobra.Command {
	var (
		purpose     string
		districts   []string
		priceMin    float64
		priceMax    float64
		bedroomsMin float64
		bedroomsMax float64
		sizeMin     float64
		sizeMax     float64
		furnished   string
		sortBy      string
		synthetic   bool
		count       int
		seed        int64
		csvSources  []string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search aggregated apartment listings",
		Long: "Opens a session (or reuses --session), registers the requested\n" +
			"sources, and runs the filter/sort/dedup pipeline on the server.",
		Example: `  aqar search --synthetic --purpose rent --districts "Al Malqa,Al Yasmin"
  aqar search --csv myagency=listings.csv --price-max 8000 --sort price_asc`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := types.Criteria{
				Purpose:   types.Purpose(purpose),
				Districts: districts,
				Furnished: types.FurnishedFilter(furnished),
				SortBy:    types.SortMode(sortBy),
			}
			if priceMin > 0 {
				c.PriceMin = types.Float(priceMin)
			}
			if priceMax > 0 {
				c.PriceMax = types.Float(priceMax)
			}
			if bedroomsMin > 0 {
				c.BedroomsMin = types.Float(bedroomsMin)
			}
			if bedroomsMax > 0 {
				c.BedroomsMax = types.Float(bedroomsMax)
			}
			if sizeMin > 0 {
				c.SizeMin = types.Float(sizeMin)
			}
			if sizeMax > 0 {
				c.SizeMax = types.Float(sizeMax)
			}
			return runSearch(cmd, c, synthetic, count, seed, csvSources)
		},
	}

	cmd.Flags().StringVar(&purpose, "purpose", "rent", "rent or sale")
	cmd.Flags().StringSliceVar(&districts, "districts", nil, "districts to include")
	cmd.Flags().Float64Var(&priceMin, "price-min", 0, "minimum price in SAR")
	cmd.Flags().Float64Var(&priceMax, "price-max", 0, "maximum price in SAR")
	cmd.Flags().Float64Var(&bedroomsMin, "bedrooms-min", 0, "minimum bedrooms")
	cmd.Flags().Float64Var(&bedroomsMax, "bedrooms-max", 0, "maximum bedrooms")
	cmd.Flags().Float64Var(&sizeMin, "size-min", 0, "minimum size in sqm")
	cmd.Flags().Float64Var(&sizeMax, "size-max", 0, "maximum size in sqm")
	cmd.Flags().StringVar(&furnished, "furnished", "any", "furnishing filter (any, furnished, unfurnished)")
	cmd.Flags().StringVar(&sortBy, "sort", "newest", "sort mode (newest, price_asc, price_desc, size_desc)")
	cmd.Flags().BoolVar(&synthetic, "synthetic", false, "register the demo data generator")
	cmd.Flags().IntVar(&count, "count", 40, "synthetic listing count")
	cmd.Flags().Int64Var(&seed, "seed", 17, "synthetic random seed")
	cmd.Flags().StringSliceVar(&csvSources, "csv", nil, "CSV source as provider=path (repeatable)")

	return cmd
}

func runSearch(cmd *cobra.Command, c types.Criteria, synthetic bool, count int, seed int64, csvSources []string) error {
	ctx := cmd.Context()
	api := newClient()

	sessionID, err := resolveSession(cmd)
	if err != nil {
		return err
	}

	if synthetic {
		if err := api.EnableSynthetic(ctx, sessionID, count, seed); err != nil {
			return fmt.Errorf("enabling synthetic source: %w", err)
		}
	}
	for _, arg := range csvSources {
		provider, path, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("invalid --csv value %q, want provider=path", arg)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		rows, err := api.UploadCSV(ctx, sessionID, provider, data)
		if err != nil {
			return fmt.Errorf("uploading %s: %w", path, err)
		}
		fmt.Fprintf(os.Stderr, "Registered %d rows from %s as %q\n", rows, path, provider)
	}

	if err := api.SetCriteria(ctx, sessionID, c); err != nil {
		return fmt.Errorf("setting criteria: %w", err)
	}

	result, err := api.Search(ctx, sessionID, types.Criteria{})
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}

	if jsonOutput() {
		return outputJSON(result)
	}
	if err := printListingsTable(result.Listings); err != nil {
		return err
	}
	printSummary(result)
	return nil
}
