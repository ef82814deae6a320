// Package normalize maps heterogeneous provider rows into the canonical
// listing schema. Providers disagree on column names, language, and value
// formats, so every field goes through an ordered alias lookup followed by a
// forgiving coercion: a value that cannot be parsed becomes an explicit
// absence, never an error. Normalize is a pure function of its inputs and
// cannot fail.
package normalize

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"

	"github.com/aqarhub/aqarfinder/internal/geo"
	"github.com/aqarhub/aqarfinder/pkg/types"
)

// Row is one raw tabular record: raw column name to raw cell value.
type Row map[string]string

// Defaults applied when a field has no usable value.
const (
	DefaultProvider = "unknown"
	DefaultTitle    = "Apartment"
	DefaultCity     = "Riyadh"
)

// Normalize converts one raw row into a canonical Listing. The provider
// argument is only a fallback for rows that carry no provider column of
// their own.
func Normalize(row Row, provider string) types.Listing {
	lower := lowerKeys(row)

	get := func(field string) (string, bool) {
		for _, alias := range fieldAliases[field] {
			if v, ok := lower[strings.ToLower(alias)]; ok {
				return v, true
			}
		}
		return "", false
	}

	str := func(field string) *string { return toString(first(get(field))) }
	num := func(field string) *float64 { return toFloat(first(get(field))) }

	l := types.Listing{
		PriceSAR:     num("price_sar"),
		PricePeriod:  str("price_period"),
		Bedrooms:     num("bedrooms"),
		Bathrooms:    num("bathrooms"),
		SizeSQM:      num("size_sqm"),
		Furnished:    toBool(first(get("furnished"))),
		District:     toDistrict(first(get("district"))),
		Latitude:     toCoord(num("latitude"), 90),
		Longitude:    toCoord(num("longitude"), 180),
		URL:          str("url"),
		Images:       toImages(first(get("images"))),
		Description:  str("description"),
		DatePosted:   str("date_posted"),
		ContactPhone: str("contact_phone"),
	}

	l.Provider = orDefault(str("provider"), provider)
	if l.Provider == "" {
		l.Provider = DefaultProvider
	}
	l.ListingID = orDefault(str("listing_id"), hashID(row))
	l.Title = orDefault(str("title"), DefaultTitle)
	l.City = orDefault(str("city"), DefaultCity)

	return l
}

func first(v string, _ bool) string { return v }

func lowerKeys(row Row) map[string]string {
	m := make(map[string]string, len(row))
	for k, v := range row {
		m[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return m
}

func orDefault(v *string, def string) string {
	if v != nil {
		return *v
	}
	return def
}

// toString trims the raw value; empty means absent.
func toString(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}

// toFloat parses a real number after stripping thousands separators.
// Unparseable or empty values are absent, not zero.
func toFloat(raw string) *float64 {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// toBool resolves the furnishing tri-state from the bilingual vocabularies.
func toBool(raw string) *bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return nil
	}
	if _, ok := trueTokens[s]; ok {
		return types.Bool(true)
	}
	if _, ok := falseTokens[s]; ok {
		return types.Bool(false)
	}
	return nil
}

// toDistrict canonicalizes known Arabic district names; anything else passes
// through verbatim.
func toDistrict(raw string) *string {
	s := toString(raw)
	if s == nil {
		return nil
	}
	return types.Str(geo.Canonical(*s))
}

// toCoord drops values outside the valid geographic range.
func toCoord(v *float64, limit float64) *float64 {
	if v == nil || *v < -limit || *v > limit {
		return nil
	}
	return v
}

// toImages parses a literal-looking sequence of URLs ([...], JSON or
// Python-style). A bare nonempty string becomes a single-element list.
func toImages(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		var urls []string
		if err := json.Unmarshal([]byte(s), &urls); err == nil {
			return urls
		}
		// Python-style list literal: split and strip quotes by hand.
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			return nil
		}
		var out []string
		for _, part := range strings.Split(inner, ",") {
			u := strings.Trim(strings.TrimSpace(part), `'"`)
			if u != "" {
				out = append(out, u)
			}
		}
		return out
	}
	return []string{s}
}

// hashID derives a deterministic listing ID from the whole raw row. The
// value is stable for identical row content within this implementation but
// is not portable across implementations or serializations.
func hashID(row Row) string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := fnv.New64a()
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%s\n", k, row[k])
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
