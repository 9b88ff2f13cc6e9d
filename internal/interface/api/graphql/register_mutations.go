package graphql

import (
	"context"
	"errors"

	"go.appointy.com/jaal/schemabuilder"
	"go.uber.org/zap"

	"user-registry-api/internal/application/services"
	"user-registry-api/internal/domain/user"
	authDTO "user-registry-api/internal/interface/api/graphql/dto/auth"
	userDTO "user-registry-api/internal/interface/api/graphql/dto/user"
	"user-registry-api/internal/interface/api/graphql/validator"
)

var (
	errFailedToRegister   = errors.New("failed to register user")
	errInvalidCredentials = errors.New("invalid credentials")
)

// RegisterMutation declares registerUser and login.
func RegisterMutation(sb *schemabuilder.Schema, r *Resolver) {
	m := sb.Mutation()

	m.FieldFunc("registerUser", func(ctx context.Context, args struct {
		Input userDTO.RegisterUserInput
	}) (*userDTO.RegisterResponse, error) {
		in := validator.NormalizeRegisterInput(args.Input)
		if errs := validator.ValidateRegisterInput(in); errs != nil {
			return nil, errs.AsError()
		}

		reg, err := userDTO.ToRegistration(in)
		if err != nil {
			// typed validation failure, safe to return as-is
			return nil, err
		}

		if _, err = r.userService.Register(ctx, reg, in.Password); err != nil {
			if errors.Is(err, user.ErrAlreadyRegistered) {
				return &userDTO.RegisterResponse{Success: false, Message: msgAlreadyRegistered}, nil
			}
			r.logger.Error("Register() error", zap.Error(err))
			return nil, errFailedToRegister
		}

		return &userDTO.RegisterResponse{Success: true, Message: msgRegistered}, nil
	}, schemabuilder.FieldDesc("Registers a new user with document and contact info in one atomic operation."))

	m.FieldFunc("login", func(ctx context.Context, args struct {
		Email    string
		Password string
	}) (*authDTO.AuthPayload, error) {
		u, err := r.userService.FindByEmail(ctx, args.Email)
		if err != nil {
			r.logger.Error("FindByEmail() error", zap.Error(err))
			return nil, errInvalidCredentials
		}
		if u == nil {
			return nil, errInvalidCredentials
		}

		token, err := r.authService.GenerateToken(u, args.Password)
		if err != nil {
			if !errors.Is(err, services.ErrInvalidCredentials) {
				r.logger.Error("GenerateToken() error", zap.Error(err), zap.Int64("user_id", int64(u.ID)))
			}
			return nil, errInvalidCredentials
		}

		return &authDTO.AuthPayload{AccessToken: token, TokenType: "Bearer"}, nil
	}, schemabuilder.FieldDesc("Exchanges email and password for a bearer token."))
}
