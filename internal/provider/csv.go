package provider

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"

	"github.com/aqarhub/aqarfinder/internal/geo"
	"github.com/aqarhub/aqarfinder/internal/metrics"
	"github.com/aqarhub/aqarfinder/pkg/normalize"
	"github.com/aqarhub/aqarfinder/pkg/types"
)

// CSVProvider wraps one uploaded delimited file. The header row is matched
// against the normalizer's alias tables, so no fixed column order or naming
// is required. One bad row never aborts the ingest: unreadable records are
// skipped and counted, malformed cells degrade to absent values.
type CSVProvider struct {
	name string
	data []byte
	log  *slog.Logger
}

// CSVOption configures a CSVProvider.
type CSVOption func(*CSVProvider)

// WithCSVLogger sets a custom logger.
func WithCSVLogger(l *slog.Logger) CSVOption {
	return func(p *CSVProvider) {
		p.log = l
	}
}

// NewCSVProvider creates a provider over raw delimited text. The name tags
// every row whose provider column is empty.
func NewCSVProvider(name string, data []byte, opts ...CSVOption) *CSVProvider {
	p := &CSVProvider{
		name: name,
		data: data,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the declared provider name.
func (p *CSVProvider) Name() string { return p.name }

// Fetch parses the file and normalizes every row. The filter params are
// ignored; uploaded files are filtered downstream by the pipeline.
func (p *CSVProvider) Fetch(_ context.Context, _ Params) ([]types.Listing, error) {
	r := csv.NewReader(bytes.NewReader(p.data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	var listings []types.Listing
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Skip the unreadable record, keep the rest of the file.
			p.log.Warn("skipping malformed row", "provider", p.name, "error", err)
			metrics.IngestMalformedRowsTotal.WithLabelValues(p.name).Inc()
			continue
		}

		row := make(normalize.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		listings = append(listings, normalize.Normalize(row, p.name))
		metrics.IngestRowsTotal.WithLabelValues(p.name).Inc()
	}

	geo.ApplyCentroidFallback(listings)
	return listings, nil
}
