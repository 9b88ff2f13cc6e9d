package services

import (
	"errors"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"user-registry-api/internal/application/ports"
	"user-registry-api/internal/domain/user"
	"user-registry-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(
	jwtService *jwt.Service,
) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
	}
}

func (as *AuthService) GenerateToken(u *user.User, requestPassword string) (string, error) {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(requestPassword))
	if err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(strconv.FormatInt(int64(u.ID), 10), u.Username, time.Hour)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
