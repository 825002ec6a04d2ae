// Package service holds the use cases of the accounts and cards
// microservices. Services translate caller input into domain entities,
// coordinate the stores defined in internal/store, and apply transactional
// boundaries when a use case writes more than one table.
//
// Services never depend on HTTP types or on a concrete database. Expected
// failures surface as sentinel errors from this package or from store,
// wrapped with context; the API layer maps them to status codes with
// errors.Is.
package service
