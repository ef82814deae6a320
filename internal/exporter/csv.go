// Package exporter writes listings in the canonical 18-column delimited
// layout and produces the per-provider upload templates. Exported files are
// round-trip safe: re-normalizing an exported row yields an equal listing,
// except when the original listing_id was hash-derived.
package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/aqarhub/aqarfinder/pkg/types"
)

// Columns is the canonical column order.
var Columns = []string{
	"provider", "listing_id", "title", "price_sar", "price_period",
	"bedrooms", "bathrooms", "size_sqm", "furnished", "district", "city",
	"latitude", "longitude", "url", "images", "description", "date_posted",
	"contact_phone",
}

// Record flattens a listing into the canonical column order. Absent values
// become empty cells; the image list is encoded as a JSON array so the
// normalizer can parse it back.
func Record(l types.Listing) []string {
	return []string{
		l.Provider,
		l.ListingID,
		l.Title,
		floatCell(l.PriceSAR),
		strCell(l.PricePeriod),
		floatCell(l.Bedrooms),
		floatCell(l.Bathrooms),
		floatCell(l.SizeSQM),
		boolCell(l.Furnished),
		strCell(l.District),
		l.City,
		floatCell(l.Latitude),
		floatCell(l.Longitude),
		strCell(l.URL),
		imagesCell(l.Images),
		strCell(l.Description),
		strCell(l.DatePosted),
		strCell(l.ContactPhone),
	}
}

// Write emits the header row followed by one record per listing.
func Write(w io.Writer, listings []types.Listing) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i := range listings {
		if err := cw.Write(Record(listings[i])); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Template writes an upload template for the named provider: the canonical
// header plus one sample row showing the expected formats.
func Template(w io.Writer, provider string) error {
	sample := make([]string, len(Columns))
	sample[0] = provider
	sample[4] = "monthly"
	sample[9] = "Al Murooj"
	sample[10] = "Riyadh"
	sample[16] = time.Now().Format("2006-01-02")
	sample[17] = "+9665XXXXXXXX"

	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := cw.Write(sample); err != nil {
		return fmt.Errorf("writing sample row: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

func strCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func boolCell(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}

func imagesCell(images []string) string {
	if len(images) == 0 {
		return ""
	}
	data, err := json.Marshal(images)
	if err != nil {
		return ""
	}
	return string(data)
}
