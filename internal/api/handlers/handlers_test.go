package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqarhub/aqarfinder/internal/catalog"
	"github.com/aqarhub/aqarfinder/internal/pipeline"
	"github.com/aqarhub/aqarfinder/pkg/contact"
	"github.com/aqarhub/aqarfinder/pkg/logger"
	"github.com/aqarhub/aqarfinder/pkg/types"
)

func newTestHandler(opts ...HandlerOption) (*Handler, *catalog.Catalog) {
	cat := catalog.New()
	pipe := pipeline.New(pipeline.WithLogger(logger.Nop()))
	opts = append(opts, WithLogger(logger.Nop()))
	return New(cat, pipe, opts...), cat
}

func assertStatusError(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, status, se.GetStatus())
}

func TestCreateSession(t *testing.T) {
	t.Parallel()

	h, cat := newTestHandler()

	input := &CreateSessionInput{}
	out, err := h.CreateSession(context.Background(), input)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Body.ID)
	assert.Equal(t, "en", out.Body.Language, "language defaults to en")
	assert.Equal(t, 1, cat.Count())

	input.Body.Language = "ar"
	out, err = h.CreateSession(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "ar", out.Body.Language)
}

func TestSetCriteria(t *testing.T) {
	t.Parallel()

	h, cat := newTestHandler()
	s := cat.NewSession("en")

	input := &SetCriteriaInput{ID: s.ID}
	input.Body = types.Criteria{Purpose: types.PurposeRent, PriceMax: types.Float(9000)}

	out, err := h.SetCriteria(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, types.PurposeRent, out.Body.Purpose)
	assert.Equal(t, input.Body, s.Criteria())
}

func TestSetLanguage(t *testing.T) {
	t.Parallel()

	h, cat := newTestHandler()
	s := cat.NewSession("en")

	input := &SetLanguageInput{ID: s.ID}
	input.Body.Language = "ar"

	out, err := h.SetLanguage(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "ar", out.Body.Language)
	assert.Equal(t, "ar", s.Language)
}

func TestSetCriteria_UnknownSession(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler()
	_, err := h.SetCriteria(context.Background(), &SetCriteriaInput{ID: "nope"})
	assertStatusError(t, err, http.StatusNotFound)
}

func TestAddCSVSource(t *testing.T) {
	t.Parallel()

	h, cat := newTestHandler()
	s := cat.NewSession("en")

	input := &AddCSVSourceInput{ID: s.ID}
	input.Body.Provider = "myagency"
	input.Body.Data = "title,price,district\n3BR,7500,Al Malqa\nStudio,4000,Hittin\n"

	out, err := h.AddCSVSource(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "myagency", out.Body.Provider)
	assert.Equal(t, 2, out.Body.Rows)
	assert.Len(t, s.Sources(), 1)
}

func TestAddSyntheticSource_Defaults(t *testing.T) {
	t.Parallel()

	h, cat := newTestHandler()
	s := cat.NewSession("en")

	out, err := h.AddSyntheticSource(context.Background(), &AddSyntheticSourceInput{ID: s.ID})
	require.NoError(t, err)
	assert.Equal(t, 40, out.Body.Count)
	assert.Equal(t, int64(17), out.Body.Seed)
	assert.Len(t, s.Sources(), 1)
}

func TestSearch_EndToEnd(t *testing.T) {
	t.Parallel()

	h, cat := newTestHandler()
	s := cat.NewSession("en")

	csv := &AddCSVSourceInput{ID: s.ID}
	csv.Body.Provider = "myagency"
	csv.Body.Data = "title,price,period,district\n" +
		"Cheap,4000,monthly,Al Malqa\n" +
		"Mid,6000,monthly,Al Malqa\n" +
		"Pricey,20000,monthly,Al Malqa\n" +
		"Elsewhere,5000,monthly,Hittin\n"
	_, err := h.AddCSVSource(context.Background(), csv)
	require.NoError(t, err)

	out, err := h.Search(context.Background(), &SearchInput{
		ID:        s.ID,
		Purpose:   "rent",
		Districts: "Al Malqa",
		PriceMax:  10000,
		SortBy:    "price_asc",
	})
	require.NoError(t, err)

	require.Len(t, out.Body.Listings, 2)
	assert.Equal(t, "Cheap", out.Body.Listings[0].Title)
	assert.Equal(t, "Mid", out.Body.Listings[1].Title)
	assert.Equal(t, 2, out.Body.Summary.Count)
	require.NotNil(t, out.Body.Summary.MedianPrice)
	assert.InDelta(t, 5000, *out.Body.Summary.MedianPrice, 0.001)
}

func TestSearch_QueryOverridesStoredCriteria(t *testing.T) {
	t.Parallel()

	h, cat := newTestHandler()
	s := cat.NewSession("en")
	s.SetCriteria(types.Criteria{Purpose: types.PurposeRent, PriceMax: types.Float(5000)})

	csv := &AddCSVSourceInput{ID: s.ID}
	csv.Body.Provider = "x"
	csv.Body.Data = "title,price,period\nCheap,4000,monthly\nMid,6000,monthly\n"
	_, err := h.AddCSVSource(context.Background(), csv)
	require.NoError(t, err)

	// Stored cap of 5000 filters Mid out.
	out, err := h.Search(context.Background(), &SearchInput{ID: s.ID})
	require.NoError(t, err)
	assert.Len(t, out.Body.Listings, 1)

	// Query override lifts the cap for this request only.
	out, err = h.Search(context.Background(), &SearchInput{ID: s.ID, PriceMax: 9000})
	require.NoError(t, err)
	assert.Len(t, out.Body.Listings, 2)

	out, err = h.Search(context.Background(), &SearchInput{ID: s.ID})
	require.NoError(t, err)
	assert.Len(t, out.Body.Listings, 1, "stored criteria unchanged by the override")
}

func TestSearch_EmptySessionIsEmptyResult(t *testing.T) {
	t.Parallel()

	h, cat := newTestHandler()
	s := cat.NewSession("en")

	out, err := h.Search(context.Background(), &SearchInput{ID: s.ID})
	require.NoError(t, err)
	assert.Empty(t, out.Body.Listings)
	assert.Equal(t, 0, out.Body.Summary.Count)
}

func TestShortlist(t *testing.T) {
	t.Parallel()

	h, cat := newTestHandler()
	s := cat.NewSession("en")

	add := &AddShortlistInput{ID: s.ID}
	add.Body = types.Listing{Provider: "dummy", ListingID: "D-1", Title: "Studio", City: "Riyadh"}

	out, err := h.AddShortlist(context.Background(), add)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Body.Saved)

	out, err = h.AddShortlist(context.Background(), add)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Body.Saved, "duplicate saves accumulate")

	got, err := h.GetShortlist(context.Background(), &GetShortlistInput{ID: s.ID})
	require.NoError(t, err)
	require.Len(t, got.Body.Listings, 2)
	assert.Equal(t, "D-1", got.Body.Listings[0].ListingID)
}

func TestContactLink(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(WithContactDefaults(contact.Builder{}, "0512345678"))

	input := &ContactLinkInput{}
	input.Body.Phone = "05 1234 5678"
	input.Body.Title = "3BR in Al Malqa"

	out, err := h.ContactLink(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "966512345678", out.Body.Phone)
	assert.Contains(t, out.Body.Link, "https://wa.me/966512345678?text=")
}

func TestContactLink_DefaultPhoneFallback(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(WithContactDefaults(contact.Builder{}, "0512345678"))

	out, err := h.ContactLink(context.Background(), &ContactLinkInput{})
	require.NoError(t, err)
	assert.Equal(t, "966512345678", out.Body.Phone)
}

func TestContactLink_NoUsablePhone(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler()
	_, err := h.ContactLink(context.Background(), &ContactLinkInput{})
	assertStatusError(t, err, http.StatusUnprocessableEntity)
}

func TestListDistricts(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler()
	out, err := h.ListDistricts(context.Background(), &ListDistrictsInput{})
	require.NoError(t, err)

	require.NotEmpty(t, out.Body.Districts)
	first := out.Body.Districts[0]
	assert.Equal(t, "Al Murooj", first.NameEN)
	assert.Equal(t, "المروج", first.NameAR)
	require.NotNil(t, first.Centroid)
	assert.InDelta(t, 24.7492, first.Centroid.Lat, 0.0001)
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Healthz(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody)
	rec = httptest.NewRecorder()
	require.NoError(t, h.Readyz(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ready")
}

func TestShortlistCSVRoute(t *testing.T) {
	t.Parallel()

	h, cat := newTestHandler()
	s := cat.NewSession("en")
	s.AddToShortlist(types.Listing{
		Provider: "dummy", ListingID: "D-1", Title: "Studio", City: "Riyadh",
		PriceSAR: types.Float(4000),
	})

	e := echo.New()
	RegisterCSVRoutes(e, h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+s.ID+"/shortlist.csv", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "shortlist_riyadh.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "provider,listing_id,title"))
	assert.Contains(t, lines[1], "Studio")
}

func TestTemplateCSVRoute(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler()
	e := echo.New()
	RegisterCSVRoutes(e, h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates/myagency", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "template_myagency.csv")
	assert.Contains(t, rec.Body.String(), "myagency")
}
