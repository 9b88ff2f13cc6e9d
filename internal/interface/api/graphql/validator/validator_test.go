package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userDTO "user-registry-api/internal/interface/api/graphql/dto/user"
)

func validInput() userDTO.RegisterUserInput {
	return userDTO.RegisterUserInput{
		Username: "ana",
		Email:    "ana@x.com",
		Password: "pw123",
		Name:     "Ana",
		LastName: "Gomez",
		Document: userDTO.DocumentInput{
			Document:        "123",
			TypeDocumentID:  1,
			PlaceExpedition: "Bogotá",
			DateExpedition:  "2020-01-01",
		},
		Contact: userDTO.ContactInput{
			Address:        "Calle 1",
			City:           "Bogotá",
			Phone:          "601",
			CellPhone:      "300",
			EmergencyName:  "Luis",
			EmergencyPhone: "302",
			CountryID:      1,
		},
	}
}

func TestNormalizeRegisterInput(t *testing.T) {
	in := validInput()
	in.Username = "  ana  "
	in.Email = "  Ana@X.Com "
	in.Name = "José" // e + combining acute
	in.Document.DateExpedition = " 2020-01-01 "

	out := NormalizeRegisterInput(in)

	assert.Equal(t, "ana", out.Username)
	assert.Equal(t, "ana@x.com", out.Email)
	assert.Equal(t, "José", out.Name) // precomposed after NFC
	assert.Equal(t, "2020-01-01", out.Document.DateExpedition)
}

func TestValidateRegisterInput(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *userDTO.RegisterUserInput)
		wantField string
	}{
		{
			name:   "valid input passes",
			mutate: func(in *userDTO.RegisterUserInput) {},
		},
		{
			name:   "accented names are valid",
			mutate: func(in *userDTO.RegisterUserInput) { in.Name = "José María"; in.LastName = "Núñez" },
		},
		{
			name:   "abbreviated names are valid",
			mutate: func(in *userDTO.RegisterUserInput) { in.Name = "Ma. Fernanda" },
		},
		{
			name:   "password of exactly 72 bytes is valid",
			mutate: func(in *userDTO.RegisterUserInput) { in.Password = strings.Repeat("a", 72) },
		},
		{
			name:      "missing username",
			mutate:    func(in *userDTO.RegisterUserInput) { in.Username = "" },
			wantField: "username",
		},
		{
			name:      "missing email",
			mutate:    func(in *userDTO.RegisterUserInput) { in.Email = "" },
			wantField: "email",
		},
		{
			name:      "malformed email",
			mutate:    func(in *userDTO.RegisterUserInput) { in.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "blank password",
			mutate:    func(in *userDTO.RegisterUserInput) { in.Password = "   " },
			wantField: "password",
		},
		{
			name:      "password over the bcrypt limit",
			mutate:    func(in *userDTO.RegisterUserInput) { in.Password = strings.Repeat("a", 73) },
			wantField: "password",
		},
		{
			// 40 runes but 80 bytes, bcrypt counts bytes
			name:      "multibyte password over the bcrypt limit",
			mutate:    func(in *userDTO.RegisterUserInput) { in.Password = strings.Repeat("é", 40) },
			wantField: "password",
		},
		{
			name:      "name with digits",
			mutate:    func(in *userDTO.RegisterUserInput) { in.Name = "Ana123" },
			wantField: "name",
		},
		{
			name:      "missing lastName",
			mutate:    func(in *userDTO.RegisterUserInput) { in.LastName = "" },
			wantField: "lastName",
		},
		{
			name:      "zero typeDocumentID",
			mutate:    func(in *userDTO.RegisterUserInput) { in.Document.TypeDocumentID = 0 },
			wantField: "document.typeDocumentID",
		},
		{
			name:      "missing document number",
			mutate:    func(in *userDTO.RegisterUserInput) { in.Document.Document = "" },
			wantField: "document.document",
		},
		{
			name:      "missing dateExpedition",
			mutate:    func(in *userDTO.RegisterUserInput) { in.Document.DateExpedition = "" },
			wantField: "document.dateExpedition",
		},
		{
			name:      "negative countryID",
			mutate:    func(in *userDTO.RegisterUserInput) { in.Contact.CountryID = -1 },
			wantField: "contact.countryID",
		},
		{
			name:      "missing emergency contact",
			mutate:    func(in *userDTO.RegisterUserInput) { in.Contact.EmergencyName = "" },
			wantField: "contact.emergencyName",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			errs := ValidateRegisterInput(in)
			if tt.wantField == "" {
				assert.Nil(t, errs)
				return
			}
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestFieldErrors_AsError(t *testing.T) {
	errs := FieldErrors{
		"username": "username is required",
		"email":    "invalid email format",
	}

	// sorted by field name so the message is stable across runs
	assert.Equal(t,
		"invalid input: email: invalid email format; username: username is required",
		errs.AsError().Error())
}
