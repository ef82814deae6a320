package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/aqarhub/aqarfinder/internal/api/client"
	"github.com/aqarhub/aqarfinder/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

// resolveSession returns the --session flag value, or opens a new session
// and prints its ID so follow-up commands can reuse it.
func resolveSession(cmd *cobra.Command) (string, error) {
	if id := viper.GetString("session"); id != "" {
		return id, nil
	}
	s, err := newClient().CreateSession(cmd.Context(), "en")
	if err != nil {
		return "", fmt.Errorf("creating session: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Session:", s.ID)
	return s.ID, nil
}

func printListingsTable(listings []types.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("TITLE\tDISTRICT\tPRICE\tBR\tBA\tSQM\tFURN\tPOSTED\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			truncate(l.Title, 40),
			strText(l.District),
			priceText(l),
			floatText(l.Bedrooms),
			floatText(l.Bathrooms),
			floatText(l.SizeSQM),
			furnText(l.Furnished),
			strText(l.DatePosted),
		)
	}
	return tw.finish()
}

func printDistrictsTable(districts []apiclient.District) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("NAME\tARABIC\tLAT\tLON\n")
	for i := range districts {
		d := &districts[i]
		lat, lon := "-", "-"
		if d.Centroid != nil {
			lat = fmt.Sprintf("%.4f", d.Centroid.Lat)
			lon = fmt.Sprintf("%.4f", d.Centroid.Lon)
		}
		tw.writef("%s\t%s\t%s\t%s\n", d.NameEN, d.NameAR, lat, lon)
	}
	return tw.finish()
}

func printSummary(result *apiclient.SearchResult) {
	fmt.Printf("\n%d listings", result.Summary.Count)
	if result.Summary.MedianPrice != nil {
		fmt.Printf(", median price %.0f SAR", *result.Summary.MedianPrice)
	}
	if result.Summary.MedianPricePerSQM != nil {
		fmt.Printf(", median %.0f SAR/sqm", *result.Summary.MedianPricePerSQM)
	}
	fmt.Println()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func strText(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

func floatText(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f", *v)
}

func furnText(v *bool) string {
	if v == nil {
		return "-"
	}
	if *v {
		return "yes"
	}
	return "no"
}

func priceText(l *types.Listing) string {
	if l.PriceSAR == nil {
		return "-"
	}
	s := fmt.Sprintf("%.0f", *l.PriceSAR)
	if l.PricePeriod != nil {
		s += "/" + *l.PricePeriod
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
