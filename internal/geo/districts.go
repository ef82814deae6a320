// Package geo holds the bilingual Riyadh district tables and the centroid
// coordinates used as a map-display fallback when a listing carries no
// coordinates of its own.
package geo

import "github.com/aqarhub/aqarfinder/pkg/types"

// Point is a latitude/longitude pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// enToAr maps canonical English district names to their Arabic names.
var enToAr = map[string]string{
	"Al Murooj":  "المروج",
	"Al Maseef":  "المسيـف",
	"Al Nakheel": "النخيل",
	"Al Malqa":   "الملقا",
	"Hittin":     "حطين",
	"Al Sahafa":  "الصحافة",
	"Al Wurud":   "الورود",
	"Al Ghadir":  "الغدير",
	"Al Andalus": "الأندلس",
	"Al Narjis":  "النرجس",
	"Al Rabi":    "الربيع",
	"Al Olaya":   "العليا",
	"Al Arid":    "العريض",
	"Al Murabba": "المربع",
	"Qurtubah":   "قرطبة",
	"Al Yarmouk": "اليرموك",
	"Al Hamra":   "الحمراء",
}

// arToEn is the reverse of enToAr, built at init.
var arToEn = func() map[string]string {
	m := make(map[string]string, len(enToAr))
	for en, ar := range enToAr {
		m[ar] = en
	}
	return m
}()

// districtsEN is the canonical district list in a stable display order.
var districtsEN = []string{
	"Al Murooj", "Al Maseef", "Al Nakheel", "Al Malqa", "Hittin",
	"Al Sahafa", "Al Wurud", "Al Ghadir", "Al Andalus", "Al Narjis",
	"Al Rabi", "Al Olaya", "Al Arid", "Al Murabba", "Qurtubah",
	"Al Yarmouk", "Al Hamra",
}

// centroids holds approximate district centroids. Not every known district
// has one; listings in uncovered districts simply stay off the map.
var centroids = map[string]Point{
	"Al Murooj":  {Lat: 24.7492, Lon: 46.6768},
	"Al Maseef":  {Lat: 24.7466, Lon: 46.6394},
	"Al Nakheel": {Lat: 24.7400, Lon: 46.6500},
	"Al Malqa":   {Lat: 24.8075, Lon: 46.6260},
	"Hittin":     {Lat: 24.7778, Lon: 46.5900},
	"Al Sahafa":  {Lat: 24.8080, Lon: 46.6400},
	"Al Wurud":   {Lat: 24.7090, Lon: 46.6760},
	"Al Narjis":  {Lat: 24.8820, Lon: 46.6630},
}

// CityCenter is the fallback coordinate for Riyadh itself.
var CityCenter = Point{Lat: 24.7136, Lon: 46.6753}

// Districts returns the canonical English district names in display order.
func Districts() []string {
	out := make([]string, len(districtsEN))
	copy(out, districtsEN)
	return out
}

// ArabicName returns the Arabic name for a canonical district, or the input
// unchanged when the district is not in the table.
func ArabicName(en string) string {
	if ar, ok := enToAr[en]; ok {
		return ar
	}
	return en
}

// Canonical maps a raw district value to its canonical English name when the
// value matches a known Arabic alias. Unrecognized values pass through
// verbatim so providers that already use English (or districts we have not
// cataloged) keep their original label.
func Canonical(raw string) string {
	if en, ok := arToEn[raw]; ok {
		return en
	}
	return raw
}

// Centroid returns the representative coordinate for a district.
func Centroid(district string) (Point, bool) {
	p, ok := centroids[district]
	return p, ok
}

// ApplyCentroidFallback fills in missing coordinates from the district
// centroid table, in place. The fallback only triggers when the district is
// recognized; it always sets both coordinates so no listing ends up with a
// latitude but no longitude.
func ApplyCentroidFallback(listings []types.Listing) {
	for i := range listings {
		l := &listings[i]
		if l.Latitude != nil && l.Longitude != nil {
			continue
		}
		if l.District == nil {
			continue
		}
		p, ok := centroids[*l.District]
		if !ok {
			continue
		}
		l.Latitude = types.Float(p.Lat)
		l.Longitude = types.Float(p.Lon)
	}
}
