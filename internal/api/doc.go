// Package api holds the HTTP handlers of the accounts and cards services.
// Handlers validate requests, call the service layer with the resolved
// audit actor, and render either a DTO, the ResponseDto status envelope,
// or an ErrorResponse produced by HandleAPIError.
//
// Routing lives in each service's cmd package; this package only exposes
// http.HandlerFunc methods.
package api
