package normalize

// fieldAliases maps each canonical field to the ordered list of raw column
// names it may appear under, including the Arabic variants used by local
// providers. For each field the first alias present in a row wins; supporting
// a new provider usually means nothing more than adding alias entries here.
var fieldAliases = map[string][]string{
	"provider":      {"provider", "source", "المصدر"},
	"listing_id":    {"listing_id", "id", "ref", "reference", "المرجع"},
	"title":         {"title", "name", "headline", "العنوان"},
	"price_sar":     {"price_sar", "price", "rent", "amount", "السعر"},
	"price_period":  {"price_period", "period", "tenure", "التسعير"},
	"bedrooms":      {"bedrooms", "beds", "br", "غرف"},
	"bathrooms":     {"bathrooms", "baths", "ba", "حمامات"},
	"size_sqm":      {"size_sqm", "area", "area_sqm", "size", "المساحة"},
	"furnished":     {"furnished", "is_furnished", "furnish", "التجهيز"},
	"district":      {"district", "area_name", "neighborhood", "suburb", "الحي"},
	"city":          {"city", "المدينة"},
	"latitude":      {"latitude", "lat", "خط العرض"},
	"longitude":     {"longitude", "lon", "lng", "long", "خط الطول"},
	"url":           {"url", "link", "الرابط"},
	"images":        {"images", "image", "photo_urls", "الصور"},
	"description":   {"description", "desc", "details", "الوصف"},
	"date_posted":   {"date_posted", "posted", "date", "created_at", "تاريخ النشر"},
	"contact_phone": {"contact_phone", "phone", "mobile", "whatsapp", "رقم الاتصال", "جوال", "واتساب"},
}

// trueTokens and falseTokens are the accepted furnishing vocabularies.
// Anything outside both sets resolves to unknown, not false.
var (
	trueTokens = map[string]struct{}{
		"true": {}, "yes": {}, "y": {}, "1": {}, "furnished": {}, "مفروشة": {},
	}
	falseTokens = map[string]struct{}{
		"false": {}, "no": {}, "n": {}, "0": {}, "unfurnished": {}, "غير مفروشة": {},
	}
)
