package api

import (
	"net/http"

	"github.com/easybank/easybank-services/internal/api/shared"
	"github.com/easybank/easybank-services/internal/config"
)

// OpenAPI 3 document served by GET /api/docs. Only the parts the services
// describe are modelled.
type (
	OpenAPIDocument struct {
		OpenAPI      string                 `json:"openapi"`
		Info         OpenAPIInfo            `json:"info"`
		ExternalDocs *OpenAPIExternalDocs   `json:"externalDocs,omitempty"`
		Paths        map[string]OpenAPIPath `json:"paths"`
	}

	OpenAPIInfo struct {
		Title       string         `json:"title"`
		Description string         `json:"description,omitempty"`
		Version     string         `json:"version"`
		Contact     OpenAPIContact `json:"contact"`
		License     OpenAPILicense `json:"license"`
	}

	OpenAPIContact struct {
		Name  string `json:"name,omitempty"`
		Email string `json:"email,omitempty"`
		URL   string `json:"url,omitempty"`
	}

	OpenAPILicense struct {
		Name string `json:"name"`
		URL  string `json:"url,omitempty"`
	}

	OpenAPIExternalDocs struct {
		Description string `json:"description,omitempty"`
		URL         string `json:"url"`
	}

	// OpenAPIPath maps lower-case HTTP methods to operations.
	OpenAPIPath map[string]OpenAPIOperation

	OpenAPIOperation struct {
		Summary     string                     `json:"summary"`
		Description string                     `json:"description,omitempty"`
		Parameters  []OpenAPIParameter         `json:"parameters,omitempty"`
		Responses   map[string]OpenAPIResponse `json:"responses"`
	}

	OpenAPIParameter struct {
		Name     string            `json:"name"`
		In       string            `json:"in"`
		Required bool              `json:"required"`
		Schema   map[string]string `json:"schema"`
	}

	OpenAPIResponse struct {
		Description string `json:"description"`
	}
)

var mobileNumberQuery = []OpenAPIParameter{{
	Name:     "mobileNumber",
	In:       "query",
	Required: true,
	Schema:   map[string]string{"type": "string", "pattern": "^[0-9]{10}$"},
}}

func responses(codes map[string]string) map[string]OpenAPIResponse {
	out := make(map[string]OpenAPIResponse, len(codes))
	for code, desc := range codes {
		out[code] = OpenAPIResponse{Description: desc}
	}
	return out
}

// NewOpenAPIDocument describes the endpoints of service using the metadata
// in cfg.
func NewOpenAPIDocument(service string, cfg config.DocsConfig) OpenAPIDocument {
	doc := OpenAPIDocument{
		OpenAPI: "3.0.1",
		Info: OpenAPIInfo{
			Title:       cfg.Title,
			Description: cfg.Description,
			Version:     cfg.Version,
			Contact:     OpenAPIContact{Name: cfg.ContactName, Email: cfg.ContactEmail, URL: cfg.ContactURL},
			License:     OpenAPILicense{Name: cfg.LicenseName, URL: cfg.LicenseURL},
		},
		Paths: commonPaths(),
	}
	if cfg.ExternalDocsURL != "" {
		doc.ExternalDocs = &OpenAPIExternalDocs{Description: cfg.ExternalDocsDesc, URL: cfg.ExternalDocsURL}
	}

	var crud map[string]OpenAPIPath
	switch service {
	case config.ServiceAccounts:
		crud = accountsPaths()
	case config.ServiceCards:
		crud = cardsPaths()
	}
	for p, item := range crud {
		doc.Paths[p] = item
	}
	return doc
}

func commonPaths() map[string]OpenAPIPath {
	return map[string]OpenAPIPath{
		"/api/contact-info": {"get": {
			Summary:   "Get contact info",
			Responses: responses(map[string]string{"200": MessageOK}),
		}},
		"/api/build-info": {"get": {
			Summary:   "Get build information",
			Responses: responses(map[string]string{"200": MessageOK}),
		}},
		"/health": {"get": {
			Summary:   "Health check",
			Responses: responses(map[string]string{"200": "Service and database are up", "503": "Database unreachable"}),
		}},
	}
}

func accountsPaths() map[string]OpenAPIPath {
	return map[string]OpenAPIPath{
		"/api/create": {"post": {
			Summary:     "Create Account REST API",
			Description: "REST API to create new Customer & Account inside EazyBank",
			Responses: responses(map[string]string{
				"201": MessageAccountCreated, "400": "Customer already registered or invalid input",
				"500": MessageInternalError,
			}),
		}},
		"/api/fetch": {"get": {
			Summary:     "Fetch Account Details REST API",
			Description: "REST API to fetch Customer & Account details based on a mobile number",
			Parameters:  mobileNumberQuery,
			Responses:   responses(map[string]string{"200": MessageOK, "404": "Customer not found", "500": MessageInternalError}),
		}},
		"/api/update": {"put": {
			Summary:     "Update Account Details REST API",
			Description: "REST API to update Customer & Account details based on a account number",
			Responses: responses(map[string]string{
				"200": MessageOK, "404": "Account not found", "417": MessageUpdateFailed, "500": MessageInternalError,
			}),
		}},
		"/api/delete": {"delete": {
			Summary:     "Delete Account & Customer Details REST API",
			Description: "REST API to delete Customer & Account details based on a mobile number",
			Parameters:  mobileNumberQuery,
			Responses: responses(map[string]string{
				"200": MessageOK, "404": "Customer not found", "417": MessageDeleteFailed, "500": MessageInternalError,
			}),
		}},
	}
}

func cardsPaths() map[string]OpenAPIPath {
	return map[string]OpenAPIPath{
		"/api/create": {"post": {
			Summary:     "Create Card REST API",
			Description: "REST API to create new Card inside EazyBank",
			Parameters:  mobileNumberQuery,
			Responses: responses(map[string]string{
				"201": MessageCardCreated, "400": "Card already registered or invalid input", "500": MessageInternalError,
			}),
		}},
		"/api/fetch": {"get": {
			Summary:     "Fetch Card Details REST API",
			Description: "REST API to fetch card details based on a mobile number",
			Parameters:  mobileNumberQuery,
			Responses:   responses(map[string]string{"200": MessageOK, "404": "Card not found", "500": MessageInternalError}),
		}},
		"/api/update": {"put": {
			Summary:     "Update Card Details REST API",
			Description: "REST API to update card details based on a card number",
			Responses: responses(map[string]string{
				"200": MessageOK, "404": "Card not found", "417": MessageUpdateFailed, "500": MessageInternalError,
			}),
		}},
		"/api/delete": {"delete": {
			Summary:     "Delete Card Details REST API",
			Description: "REST API to delete Card details based on a mobile number",
			Parameters:  mobileNumberQuery,
			Responses: responses(map[string]string{
				"200": MessageOK, "404": "Card not found", "417": MessageDeleteFailed, "500": MessageInternalError,
			}),
		}},
	}
}

// DocsHandler serves a prebuilt OpenAPI document.
func DocsHandler(doc OpenAPIDocument) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, doc)
	}
}
