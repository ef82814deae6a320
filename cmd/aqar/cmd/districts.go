package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func districtsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "districts",
		Short: "List the known Riyadh districts",
		Long:  "Shows the bilingual district catalog with centroid coordinates.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			districts, err := newClient().ListDistricts(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing districts: %w", err)
			}
			if jsonOutput() {
				return outputJSON(districts)
			}
			return printDistrictsTable(districts)
		},
	}
}
