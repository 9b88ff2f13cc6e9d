package graphql

import (
	"go.uber.org/zap"

	"user-registry-api/internal/application/ports"
)

// Resolver holds the dependencies the query and mutation fields close over.
type Resolver struct {
	userService ports.UserService
	authService ports.Auth
	logger      *zap.Logger
}

func NewResolver(
	userService ports.UserService,
	authService ports.Auth,
	logger *zap.Logger,
) *Resolver {
	return &Resolver{
		userService: userService,
		authService: authService,
		logger:      logger,
	}
}

const (
	msgRegistered        = "Usuario registrado exitosamente"
	msgAlreadyRegistered = "Usuario o correo ya registrado"
)
