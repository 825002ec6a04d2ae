package audit

import "errors"

var (
	// ErrInvalidToken indicates the token format is invalid or its signature doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrInvalidActor indicates the token subject cannot be used as an actor.
	ErrInvalidActor = errors.New("invalid actor identity")

	// ErrInvalidAuthorization indicates a malformed Authorization header.
	ErrInvalidAuthorization = errors.New("invalid authorization format")
)
