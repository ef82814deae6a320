package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func templateCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "template [provider]",
		Short: "Download a CSV upload template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := "custom"
			if len(args) == 1 {
				provider = args[0]
			}
			data, err := newClient().DownloadTemplate(cmd.Context(), provider)
			if err != nil {
				return fmt.Errorf("downloading template: %w", err)
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
