package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"user-registry-api/internal/application/ports"
	domain "user-registry-api/internal/domain/user"
	"user-registry-api/internal/infrastructure/mq"
)

const bcryptCost = 10

type UserService struct {
	gateway  domain.Gateway
	mq       ports.RabbitMQ
	mCounter *prometheus.CounterVec
}

func NewUserService(
	gateway domain.Gateway,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		gateway:  gateway,
		mq:       mq,
		mCounter: mCounter,
	}
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	users, err := us.gateway.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// FindByEmail lowercases the lookup the same way registration lowercases the
// stored value, so the exact string a caller registered with always matches.
func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.gateway.FetchUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}

	return u, nil
}

// Register runs the registration workflow: duplicate check, password hash,
// atomic cascade insert. The check and the insert are not one atomic step,
// so the gateway's unique constraints remain the backstop for races; a
// violation surfaces here as ErrAlreadyRegistered, same as the check.
func (us *UserService) Register(ctx context.Context, reg domain.Registration, password string) (*domain.User, error) {
	existing, err := us.gateway.FetchUserByUsernameOrEmail(ctx, reg.Username, reg.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		us.mCounter.WithLabelValues("user_duplicate_total").Inc()
		return nil, domain.ErrAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}
	reg.PasswordHash = string(hash)

	u, err := us.gateway.CreateRegistration(ctx, reg)
	if err != nil {
		return nil, err
	}

	ev := mq.Event{
		Id:     uuid.New(),
		TS:     time.Now(),
		Action: mq.ActionRegistered,
		UserID: strconv.FormatInt(int64(u.ID), 10),
		Payload: mq.Account{
			ID:       int64(u.ID),
			Username: u.Username,
			Email:    u.Email,
			Name:     u.Name,
			LastName: u.LastName,
		},
	}
	// the registration is committed at this point; a stalled publisher
	// must not block or fail it, so a full buffer drops the event
	select {
	case us.mq.GetInputChan() <- ev:
	default:
		us.mCounter.WithLabelValues("user_event_dropped_total").Inc()
	}

	us.mCounter.WithLabelValues("user_registered_total").Inc()

	return u, nil
}
