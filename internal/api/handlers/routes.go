package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers every JSON API operation with the Huma API.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-session",
		Method:        http.MethodPost,
		Path:          "/api/v1/sessions",
		Summary:       "Open a browsing session",
		Tags:          []string{"sessions"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateSession)

	huma.Register(api, huma.Operation{
		OperationID: "set-criteria",
		Method:      http.MethodPut,
		Path:        "/api/v1/sessions/{id}/criteria",
		Summary:     "Replace the session filter criteria",
		Tags:        []string{"sessions"},
	}, h.SetCriteria)

	huma.Register(api, huma.Operation{
		OperationID: "set-language",
		Method:      http.MethodPut,
		Path:        "/api/v1/sessions/{id}/language",
		Summary:     "Switch the session UI language",
		Tags:        []string{"sessions"},
	}, h.SetLanguage)

	huma.Register(api, huma.Operation{
		OperationID: "add-csv-source",
		Method:      http.MethodPost,
		Path:        "/api/v1/sessions/{id}/sources/csv",
		Summary:     "Register an uploaded CSV as a listing source",
		Tags:        []string{"sources"},
	}, h.AddCSVSource)

	huma.Register(api, huma.Operation{
		OperationID: "add-synthetic-source",
		Method:      http.MethodPost,
		Path:        "/api/v1/sessions/{id}/sources/synthetic",
		Summary:     "Enable the synthetic demo data source",
		Tags:        []string{"sources"},
	}, h.AddSyntheticSource)

	huma.Register(api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/api/v1/sessions/{id}/search",
		Summary:     "Run the filter pipeline over all session sources",
		Tags:        []string{"search"},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "add-shortlist",
		Method:      http.MethodPost,
		Path:        "/api/v1/sessions/{id}/shortlist",
		Summary:     "Save a listing to the session shortlist",
		Tags:        []string{"shortlist"},
	}, h.AddShortlist)

	huma.Register(api, huma.Operation{
		OperationID: "get-shortlist",
		Method:      http.MethodGet,
		Path:        "/api/v1/sessions/{id}/shortlist",
		Summary:     "List the saved listings",
		Tags:        []string{"shortlist"},
	}, h.GetShortlist)

	huma.Register(api, huma.Operation{
		OperationID: "contact-link",
		Method:      http.MethodPost,
		Path:        "/api/v1/contact-link",
		Summary:     "Build a WhatsApp contact link for a listing",
		Tags:        []string{"contact"},
	}, h.ContactLink)

	huma.Register(api, huma.Operation{
		OperationID: "list-districts",
		Method:      http.MethodGet,
		Path:        "/api/v1/districts",
		Summary:     "List the bilingual district catalog",
		Tags:        []string{"districts"},
	}, h.ListDistricts)
}
