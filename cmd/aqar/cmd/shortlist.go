package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func shortlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shortlist",
		Short: "Show or export the session shortlist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sessionID := viper.GetString("session")
			if sessionID == "" {
				return fmt.Errorf("--session is required")
			}
			listings, err := newClient().GetShortlist(cmd.Context(), sessionID)
			if err != nil {
				return fmt.Errorf("fetching shortlist: %w", err)
			}
			if jsonOutput() {
				return outputJSON(listings)
			}
			return printListingsTable(listings)
		},
	}

	cmd.AddCommand(shortlistExportCmd())
	return cmd
}

func shortlistExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the shortlist as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sessionID := viper.GetString("session")
			if sessionID == "" {
				return fmt.Errorf("--session is required")
			}
			data, err := newClient().DownloadShortlistCSV(cmd.Context(), sessionID)
			if err != nil {
				return fmt.Errorf("downloading shortlist: %w", err)
			}
			if output == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintln(os.Stderr, "Wrote", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
