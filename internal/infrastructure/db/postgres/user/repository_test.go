package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "user-registry-api/internal/domain/user"
)

var (
	baseColumns = []string{
		"id", "username", "email", "password_hash", "name", "last_name",
		"is_militar", "is_temporal", "time_create", "email_verified",
	}
	expandedColumnNames = append(append([]string{}, baseColumns...),
		"document", "type_document_id", "place_expedition", "date_expedition", "name_type_document",
		"address", "city", "phone", "cell_phone", "emergency_name", "emergency_phone",
		"country_id", "country_code", "country_name",
	)
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func someRegistration() domain.Registration {
	return domain.Registration{
		Username:     "ana",
		Email:        "ana@x.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Name:         "Ana",
		LastName:     "Gomez",
		Document: domain.Document{
			Document:        "123",
			TypeDocumentID:  1,
			PlaceExpedition: "Bogota",
			DateExpedition:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Contact: domain.ContactInfo{
			Address:        "Calle 1",
			City:           "Bogota",
			Phone:          "600",
			CellPhone:      "700",
			EmergencyName:  "Luis",
			EmergencyPhone: "800",
			CountryID:      1,
		},
	}
}

func TestFetchUserByUsernameOrEmail(t *testing.T) {
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(SelectUserByUsernameOrEmail).
			WithArgs("ana", "ana@x.com").
			WillReturnRows(pgxmock.NewRows(baseColumns).
				AddRow(int64(1), "ana", "ana@x.com", "hash", "Ana", "Gomez", false, false, now, false))

		r := &Repository{db: mock}
		u, err := r.FetchUserByUsernameOrEmail(context.Background(), "ana", "ana@x.com")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, domain.ID(1), u.ID)
		assert.Equal(t, "ana", u.Username)
		assert.Nil(t, u.Document)
		assert.Nil(t, u.ContactInfo)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no match is not an error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(SelectUserByUsernameOrEmail).
			WithArgs("nobody", "nobody@x.com").
			WillReturnError(pgx.ErrNoRows)

		r := &Repository{db: mock}
		u, err := r.FetchUserByUsernameOrEmail(context.Background(), "nobody", "nobody@x.com")
		require.NoError(t, err)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFetchUserByEmail_Expanded(t *testing.T) {
	now := time.Now()
	dateExp := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("found with relations", func(t *testing.T) {
		mock := newMock(t)
		doc := "123"
		tdID := int64(1)
		place := "Bogota"
		tdName := "Cédula de Ciudadanía"
		addr := "Calle 1"
		city := "Bogota"
		phone := "600"
		cell := "700"
		emName := "Luis"
		emPhone := "800"
		countryID := int64(1)
		cc := "CO"
		cn := "Colombia"

		mock.ExpectQuery(SelectUserByEmailExpanded).
			WithArgs("ana@x.com").
			WillReturnRows(pgxmock.NewRows(expandedColumnNames).
				AddRow(int64(1), "ana", "ana@x.com", "hash", "Ana", "Gomez", false, false, now, false,
					&doc, &tdID, &place, &dateExp, &tdName,
					&addr, &city, &phone, &cell, &emName, &emPhone, &countryID, &cc, &cn))

		r := &Repository{db: mock}
		u, err := r.FetchUserByEmail(context.Background(), "ana@x.com")
		require.NoError(t, err)
		require.NotNil(t, u)

		require.NotNil(t, u.Document)
		assert.Equal(t, "123", u.Document.Document)
		assert.Equal(t, dateExp, u.Document.DateExpedition)
		require.NotNil(t, u.Document.TypeDocument)
		assert.Equal(t, "Cédula de Ciudadanía", u.Document.TypeDocument.NameTypeDocument)

		require.NotNil(t, u.ContactInfo)
		assert.Equal(t, "Calle 1", u.ContactInfo.Address)
		require.NotNil(t, u.ContactInfo.Country)
		assert.Equal(t, "CO", u.ContactInfo.Country.CountryCode)
		assert.Equal(t, "Colombia", u.ContactInfo.Country.CountryName)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(SelectUserByEmailExpanded).
			WithArgs("nobody@x.com").
			WillReturnError(pgx.ErrNoRows)

		r := &Repository{db: mock}
		u, err := r.FetchUserByEmail(context.Background(), "nobody@x.com")
		require.NoError(t, err)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFetchUsers(t *testing.T) {
	now := time.Now()
	dateExp := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	doc := "123"
	tdID := int64(1)
	place := "Bogota"
	tdName := "Pasaporte"
	addr := "Calle 1"
	city := "Bogota"
	phone := "600"
	cell := "700"
	emName := "Luis"
	emPhone := "800"
	countryID := int64(2)
	cc := "MX"
	cn := "México"

	mock := newMock(t)
	mock.ExpectQuery(SelectUsersExpanded).
		WillReturnRows(pgxmock.NewRows(expandedColumnNames).
			AddRow(int64(1), "ana", "ana@x.com", "hash", "Ana", "Gomez", false, false, now, false,
				&doc, &tdID, &place, &dateExp, &tdName,
				&addr, &city, &phone, &cell, &emName, &emPhone, &countryID, &cc, &cn).
			AddRow(int64(2), "orphan", "orphan@x.com", "hash", "Or", "Phan", false, true, now, false,
				nil, nil, nil, nil, nil,
				nil, nil, nil, nil, nil, nil, nil, nil, nil))

	r := &Repository{db: mock}
	us, err := r.FetchUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, us, 2)

	require.NotNil(t, us[0].Document)
	require.NotNil(t, us[0].ContactInfo)
	assert.Equal(t, "Pasaporte", us[0].Document.TypeDocument.NameTypeDocument)

	// registration that never finished has no relations
	assert.Nil(t, us[1].Document)
	assert.Nil(t, us[1].ContactInfo)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRegistration(t *testing.T) {
	now := time.Now()
	reg := someRegistration()

	t.Run("success commits all three inserts", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectQuery(InsertUser).
			WithArgs(reg.Username, reg.Email, reg.PasswordHash, reg.Name, reg.LastName, reg.IsMilitar, reg.IsTemporal).
			WillReturnRows(pgxmock.NewRows(baseColumns).
				AddRow(int64(1), reg.Username, reg.Email, reg.PasswordHash, reg.Name, reg.LastName, false, false, now, false))
		mock.ExpectExec(InsertDocument).
			WithArgs(int64(1), reg.Document.Document, int64(1), reg.Document.PlaceExpedition, reg.Document.DateExpedition).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(InsertContact).
			WithArgs(int64(1), reg.Contact.Address, reg.Contact.City, reg.Contact.Phone, reg.Contact.CellPhone,
				reg.Contact.EmergencyName, reg.Contact.EmergencyPhone, int64(1)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		r := &Repository{db: mock}
		u, err := r.CreateRegistration(context.Background(), reg)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, domain.ID(1), u.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to already registered", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectQuery(InsertUser).
			WithArgs(reg.Username, reg.Email, reg.PasswordHash, reg.Name, reg.LastName, reg.IsMilitar, reg.IsTemporal).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "app_users_email_key"})
		mock.ExpectRollback()

		r := &Repository{db: mock}
		u, err := r.CreateRegistration(context.Background(), reg)
		require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("document insert failure rolls everything back", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectQuery(InsertUser).
			WithArgs(reg.Username, reg.Email, reg.PasswordHash, reg.Name, reg.LastName, reg.IsMilitar, reg.IsTemporal).
			WillReturnRows(pgxmock.NewRows(baseColumns).
				AddRow(int64(1), reg.Username, reg.Email, reg.PasswordHash, reg.Name, reg.LastName, false, false, now, false))
		mock.ExpectExec(InsertDocument).
			WithArgs(int64(1), reg.Document.Document, int64(1), reg.Document.PlaceExpedition, reg.Document.DateExpedition).
			WillReturnError(errors.New("fk violation"))
		mock.ExpectRollback()

		r := &Repository{db: mock}
		u, err := r.CreateRegistration(context.Background(), reg)
		require.Error(t, err)
		assert.Nil(t, u)
		assert.NotErrorIs(t, err, domain.ErrAlreadyRegistered)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSeedReferenceData(t *testing.T) {
	expectSeed := func(mock pgxmock.PgxPoolIface, rowsAffected int64) {
		for _, c := range SeedCountries {
			mock.ExpectExec(UpsertCountry).
				WithArgs(int64(c.ID), c.CountryCode, c.CountryName).
				WillReturnResult(pgxmock.NewResult("INSERT", rowsAffected))
		}
		for _, td := range SeedTypeDocuments {
			mock.ExpectExec(UpsertTypeDocument).
				WithArgs(int64(td.ID), td.NameTypeDocument).
				WillReturnResult(pgxmock.NewResult("INSERT", rowsAffected))
		}
	}

	t.Run("first run inserts all rows", func(t *testing.T) {
		mock := newMock(t)
		expectSeed(mock, 1)

		r := &Repository{db: mock}
		require.NoError(t, r.SeedReferenceData(context.Background()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second run skips existing rows without failing", func(t *testing.T) {
		mock := newMock(t)
		expectSeed(mock, 0)

		r := &Repository{db: mock}
		require.NoError(t, r.SeedReferenceData(context.Background()))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
