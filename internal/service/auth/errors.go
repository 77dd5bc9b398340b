// Package auth provides token issuing/validation and password hashing
// services for authenticating Taskhive users.
package auth

import "errors"

// Authentication errors returned by the services in this package.
var (
	// ErrInvalidToken is returned when a token is malformed, has a bad
	// signature, or fails validation for any reason other than expiry.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry time has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenNotYetValid is returned when a token's not-before time is in
	// the future.
	ErrTokenNotYetValid = errors.New("token not yet valid")
)
