package user

import "errors"

var (
	// ErrAlreadyRegistered is a business rejection, not an operation failure:
	// callers answer it with a polite message instead of an error response.
	ErrAlreadyRegistered = errors.New("username or email already registered")

	// ErrInvalidDateExpedition rejects a dateExpedition that is not a
	// YYYY-MM-DD calendar date, before any write happens.
	ErrInvalidDateExpedition = errors.New("invalid dateExpedition, want YYYY-MM-DD")
)
