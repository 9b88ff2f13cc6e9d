package user

import (
	"time"

	domain "user-registry-api/internal/domain/user"
)

const dateExpeditionLayout = "2006-01-02"

// ToRegistration converts the validated input into the domain registration.
// The expedition date is the one field that can still fail here; it maps to
// the typed validation error so no write ever happens on a bad date.
func ToRegistration(in RegisterUserInput) (domain.Registration, error) {
	date, err := time.Parse(dateExpeditionLayout, in.Document.DateExpedition)
	if err != nil {
		return domain.Registration{}, domain.ErrInvalidDateExpedition
	}

	return domain.Registration{
		Username:   in.Username,
		Email:      in.Email,
		Name:       in.Name,
		LastName:   in.LastName,
		IsMilitar:  in.IsMilitar,
		IsTemporal: in.IsTemporal,
		Document: domain.Document{
			Document:        in.Document.Document,
			TypeDocumentID:  domain.ID(in.Document.TypeDocumentID),
			PlaceExpedition: in.Document.PlaceExpedition,
			DateExpedition:  date,
		},
		Contact: domain.ContactInfo{
			Address:        in.Contact.Address,
			City:           in.Contact.City,
			Phone:          in.Contact.Phone,
			CellPhone:      in.Contact.CellPhone,
			EmergencyName:  in.Contact.EmergencyName,
			EmergencyPhone: in.Contact.EmergencyPhone,
			CountryID:      domain.ID(in.Contact.CountryID),
		},
	}, nil
}
