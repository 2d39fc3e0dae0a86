package services

import "errors"

var (
	// ErrInvalidCredentials is returned on login when the username does not
	// exist or the password does not match. The two cases are deliberately
	// indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation is returned when a payload field is missing or malformed.
	ErrValidation = errors.New("validation failed")
)
