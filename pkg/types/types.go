// Package types defines the canonical listing schema and search criteria
// shared by all providers and the filter pipeline.
package types

// Purpose distinguishes rental listings from sale listings.
type Purpose string

// Purpose constants.
const (
	PurposeRent Purpose = "rent"
	PurposeSale Purpose = "sale"
)

// SortMode selects the ordering of search results.
type SortMode string

// Sort mode constants.
const (
	SortNewest    SortMode = "newest"
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
	SortSizeDesc  SortMode = "size_desc"
)

// FurnishedFilter selects listings by furnishing state.
type FurnishedFilter string

// Furnished filter constants.
const (
	FurnishedAny FurnishedFilter = "any"
	FurnishedYes FurnishedFilter = "furnished"
	FurnishedNo  FurnishedFilter = "unfurnished"
)

// Listing is the canonical record every provider is normalized into.
// Optional fields are pointers (or a nil slice for Images); a nil value is
// an explicit absence, never a zero default. After normalization all 18
// fields are populated with either a value or an explicit absence.
type Listing struct {
	Provider     string   `json:"provider"`
	ListingID    string   `json:"listing_id"`
	Title        string   `json:"title"`
	PriceSAR     *float64 `json:"price_sar,omitempty"`
	PricePeriod  *string  `json:"price_period,omitempty"`
	Bedrooms     *float64 `json:"bedrooms,omitempty"`
	Bathrooms    *float64 `json:"bathrooms,omitempty"`
	SizeSQM      *float64 `json:"size_sqm,omitempty"`
	Furnished    *bool    `json:"furnished,omitempty"`
	District     *string  `json:"district,omitempty"`
	City         string   `json:"city"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	URL          *string  `json:"url,omitempty"`
	Images       []string `json:"images,omitempty"`
	Description  *string  `json:"description,omitempty"`
	DatePosted   *string  `json:"date_posted,omitempty"`
	ContactPhone *string  `json:"contact_phone,omitempty"`
}

// Criteria defines one filter/sort pass over the merged working set.
// Nil numeric bounds are unbounded. An empty district selection means no
// district filtering.
type Criteria struct {
	Purpose     Purpose         `json:"purpose"`
	Districts   []string        `json:"districts,omitempty"`
	PriceMin    *float64        `json:"price_min,omitempty"`
	PriceMax    *float64        `json:"price_max,omitempty"`
	BedroomsMin *float64        `json:"bedrooms_min,omitempty"`
	BedroomsMax *float64        `json:"bedrooms_max,omitempty"`
	SizeMin     *float64        `json:"size_min,omitempty"`
	SizeMax     *float64        `json:"size_max,omitempty"`
	Furnished   FurnishedFilter `json:"furnished,omitempty"`
	SortBy      SortMode        `json:"sort_by,omitempty"`
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Str returns a pointer to s.
func Str(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }
