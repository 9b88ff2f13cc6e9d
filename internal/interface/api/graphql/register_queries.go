package graphql

import (
	"context"
	"errors"

	"go.appointy.com/jaal/schemabuilder"
	"go.uber.org/zap"

	"user-registry-api/internal/domain/user"
)

var (
	errFailedToGetUsers = errors.New("failed to get users")
	errFailedToGetUser  = errors.New("failed to get a user")
)

// RegisterQuery declares the read operations. Storage errors are logged and
// replaced with generic messages so internal detail never reaches clients.
func RegisterQuery(sb *schemabuilder.Schema, r *Resolver) {
	q := sb.Query()

	q.FieldFunc("users", func(ctx context.Context) ([]*user.User, error) {
		users, err := r.userService.FindUsers(ctx)
		if err != nil {
			r.logger.Error("FindUsers() error", zap.Error(err))
			return nil, errFailedToGetUsers
		}
		return users, nil
	}, schemabuilder.FieldDesc("Returns every registered user with document and contact info expanded."))

	q.FieldFunc("userByEmail", func(ctx context.Context, args struct {
		Email string
	}) (*user.User, error) {
		u, err := r.userService.FindByEmail(ctx, args.Email)
		if err != nil {
			r.logger.Error("FindByEmail() error", zap.Error(err))
			return nil, errFailedToGetUser
		}
		// nil means no match, which is a null result, not an error
		return u, nil
	}, schemabuilder.FieldDesc("Finds a user by email, null when none exists."))
}
