package user

import (
	"context"
)

// Gateway is the only door to storage. Reads marked "expanded" return users
// with Document (incl. TypeDocument) and ContactInfo (incl. Country) resolved.
type Gateway interface {
	// FetchUserByUsernameOrEmail returns a bare user matching either value,
	// or nil when none exists. Used by the registration duplicate check.
	FetchUserByUsernameOrEmail(ctx context.Context, username, email string) (*User, error)

	// FetchUserByEmail returns the expanded user for email, or nil. A missing
	// user is not an error.
	FetchUserByEmail(ctx context.Context, email string) (*User, error)

	// FetchUsers returns all users, expanded.
	FetchUsers(ctx context.Context) (Users, error)

	// CreateRegistration inserts user, document and contact rows inside one
	// transaction. Returns ErrAlreadyRegistered when a uniqueness constraint
	// fires, leaving no partial rows behind.
	CreateRegistration(ctx context.Context, reg Registration) (*User, error)

	// SeedReferenceData inserts the fixed country and document-type rows,
	// skipping ids that already exist.
	SeedReferenceData(ctx context.Context) error

	Ping(ctx context.Context) error
}
