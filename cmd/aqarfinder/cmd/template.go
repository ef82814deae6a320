package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aqarhub/aqarfinder/internal/exporter"
)

var templateOutput string

var templateCmd = &cobra.Command{
	Use:   "template [provider]",
	Short: "Write a CSV upload template for a provider",
	Long: "template emits the canonical 18-column header plus one sample row\n" +
		"showing the expected value formats, ready to fill in and upload.",
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplate,
}

func init() {
	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(templateCmd)
}

func runTemplate(cmd *cobra.Command, args []string) error {
	provider := "custom"
	if len(args) == 1 {
		provider = args[0]
	}

	w := cmd.OutOrStdout()
	if templateOutput != "" {
		f, err := os.Create(templateOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", templateOutput, err)
		}
		defer f.Close()
		w = f
	}

	return exporter.Template(w, provider)
}
