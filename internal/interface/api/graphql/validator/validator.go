package validator

import (
	"errors"
	"net/mail"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	userDTO "user-registry-api/internal/interface/api/graphql/dto/user"
)

// bcrypt truncates beyond 72 bytes, longer passwords are rejected outright
const maxPasswordLen = 72

type FieldErrors map[string]string

// AsError flattens the per-field messages into one stable error. Sorted so
// the same invalid input always produces the same message.
func (fe FieldErrors) AsError() error {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return errors.New("invalid input: " + strings.Join(parts, "; "))
}

// NormalizeRegisterInput trims surrounding whitespace, lowercases the email
// and NFC-normalizes the free-text fields, so "José" written with combining
// marks and "José" precomposed land as the same stored value.
func NormalizeRegisterInput(in userDTO.RegisterUserInput) userDTO.RegisterUserInput {
	in.Username = cleanText(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = cleanText(in.Name)
	in.LastName = cleanText(in.LastName)

	in.Document.Document = strings.TrimSpace(in.Document.Document)
	in.Document.PlaceExpedition = cleanText(in.Document.PlaceExpedition)
	in.Document.DateExpedition = strings.TrimSpace(in.Document.DateExpedition)

	in.Contact.Address = cleanText(in.Contact.Address)
	in.Contact.City = cleanText(in.Contact.City)
	in.Contact.Phone = strings.TrimSpace(in.Contact.Phone)
	in.Contact.CellPhone = strings.TrimSpace(in.Contact.CellPhone)
	in.Contact.EmergencyName = cleanText(in.Contact.EmergencyName)
	in.Contact.EmergencyPhone = strings.TrimSpace(in.Contact.EmergencyPhone)

	return in
}

// ValidateRegisterInput checks the normalized input before any write.
// Returns nil when everything passes.
func ValidateRegisterInput(in userDTO.RegisterUserInput) FieldErrors {
	errs := make(FieldErrors)

	if in.Username == "" {
		errs["username"] = "username is required"
	}

	if in.Email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		errs["email"] = "invalid email format"
	}

	if strings.TrimSpace(in.Password) == "" {
		errs["password"] = "password is required"
	} else if len(in.Password) > maxPasswordLen {
		errs["password"] = "password must be at most 72 bytes"
	}

	if in.Name == "" {
		errs["name"] = "name is required"
	} else if !isHumanName(in.Name) {
		errs["name"] = "name contains invalid characters"
	}
	if in.LastName == "" {
		errs["lastName"] = "lastName is required"
	} else if !isHumanName(in.LastName) {
		errs["lastName"] = "lastName contains invalid characters"
	}

	if in.Document.Document == "" {
		errs["document.document"] = "document is required"
	}
	if in.Document.TypeDocumentID <= 0 {
		errs["document.typeDocumentID"] = "typeDocumentID must be a positive id"
	}
	if in.Document.PlaceExpedition == "" {
		errs["document.placeExpedition"] = "placeExpedition is required"
	}
	if in.Document.DateExpedition == "" {
		errs["document.dateExpedition"] = "dateExpedition is required"
	}

	if in.Contact.Address == "" {
		errs["contact.address"] = "address is required"
	}
	if in.Contact.City == "" {
		errs["contact.city"] = "city is required"
	}
	if in.Contact.Phone == "" {
		errs["contact.phone"] = "phone is required"
	}
	if in.Contact.CellPhone == "" {
		errs["contact.cellPhone"] = "cellPhone is required"
	}
	if in.Contact.EmergencyName == "" {
		errs["contact.emergencyName"] = "emergencyName is required"
	}
	if in.Contact.EmergencyPhone == "" {
		errs["contact.emergencyPhone"] = "emergencyPhone is required"
	}
	if in.Contact.CountryID <= 0 {
		errs["contact.countryID"] = "countryID must be a positive id"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' || r == '.' {
			continue
		}
		return false
	}
	return true
}
