package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "user-registry-api/internal/domain/user"
	"user-registry-api/internal/infrastructure/db/postgres"
)

// Reference rows inserted by SeedReferenceData. Other tables point at these
// ids, so they are fixed.
var (
	SeedCountries = []domain.Country{
		{ID: 1, CountryCode: "CO", CountryName: "Colombia"},
		{ID: 2, CountryCode: "MX", CountryName: "México"},
		{ID: 3, CountryCode: "AR", CountryName: "Argentina"},
	}
	SeedTypeDocuments = []domain.TypeDocument{
		{ID: 1, NameTypeDocument: "Cédula de Ciudadanía"},
		{ID: 2, NameTypeDocument: "Pasaporte"},
		{ID: 3, NameTypeDocument: "Cédula de Extranjería"},
	}
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Gateway {
	return &Repository{db: db}
}

func (r *Repository) FetchUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByUsernameOrEmail, username, email).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.LastName,
		&u.IsMilitar,
		&u.IsTemporal,
		&u.TimeCreate,
		&u.EmailVerified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByEmailExpanded, email).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.LastName,
		&u.IsMilitar,
		&u.IsTemporal,
		&u.TimeCreate,
		&u.EmailVerified,

		&u.Document,
		&u.TypeDocumentID,
		&u.PlaceExpedition,
		&u.DateExpedition,
		&u.NameTypeDocument,

		&u.Address,
		&u.City,
		&u.Phone,
		&u.CellPhone,
		&u.EmergencyName,
		&u.EmergencyPhone,
		&u.CountryID,
		&u.CountryCode,
		&u.CountryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUsers(ctx context.Context) (domain.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsersExpanded)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u := new(User)

		if err = rows.Scan(
			&u.ID,
			&u.Username,
			&u.Email,
			&u.PasswordHash,
			&u.Name,
			&u.LastName,
			&u.IsMilitar,
			&u.IsTemporal,
			&u.TimeCreate,
			&u.EmailVerified,

			&u.Document,
			&u.TypeDocumentID,
			&u.PlaceExpedition,
			&u.DateExpedition,
			&u.NameTypeDocument,

			&u.Address,
			&u.City,
			&u.Phone,
			&u.CellPhone,
			&u.EmergencyName,
			&u.EmergencyPhone,
			&u.CountryID,
			&u.CountryCode,
			&u.CountryName,
		); err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

// CreateRegistration inserts the user row and both dependent rows inside one
// transaction. A unique violation on username/email maps to the business
// duplicate error, so a race lost to a concurrent registration degrades into
// the normal "already registered" response instead of a half-written account.
func (r *Repository) CreateRegistration(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	u := new(User)
	err = tx.QueryRow(
		ctx,
		InsertUser,
		reg.Username, reg.Email, reg.PasswordHash, reg.Name, reg.LastName, reg.IsMilitar, reg.IsTemporal,
	).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.LastName,
		&u.IsMilitar,
		&u.IsTemporal,
		&u.TimeCreate,
		&u.EmailVerified,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, err
	}

	if _, err = tx.Exec(
		ctx,
		InsertDocument,
		u.ID, reg.Document.Document, int64(reg.Document.TypeDocumentID), reg.Document.PlaceExpedition, reg.Document.DateExpedition,
	); err != nil {
		return nil, err
	}

	if _, err = tx.Exec(
		ctx,
		InsertContact,
		u.ID, reg.Contact.Address, reg.Contact.City, reg.Contact.Phone, reg.Contact.CellPhone,
		reg.Contact.EmergencyName, reg.Contact.EmergencyPhone, int64(reg.Contact.CountryID),
	); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) SeedReferenceData(ctx context.Context) error {
	for _, c := range SeedCountries {
		if _, err := r.db.Exec(ctx, UpsertCountry, int64(c.ID), c.CountryCode, c.CountryName); err != nil {
			return err
		}
	}
	for _, td := range SeedTypeDocuments {
		if _, err := r.db.Exec(ctx, UpsertTypeDocument, int64(td.ID), td.NameTypeDocument); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
