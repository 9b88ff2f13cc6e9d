package user

import (
	"time"
)

type (
	// User mirrors one row of the expanded select. The document, type,
	// contact and country columns come from LEFT JOINs and stay nil when
	// the related row does not exist.
	User struct {
		ID            int64
		Username      string
		Email         string
		PasswordHash  string
		Name          string
		LastName      string
		IsMilitar     bool
		IsTemporal    bool
		TimeCreate    time.Time
		EmailVerified bool

		Document         *string
		TypeDocumentID   *int64
		PlaceExpedition  *string
		DateExpedition   *time.Time
		NameTypeDocument *string

		Address        *string
		City           *string
		Phone          *string
		CellPhone      *string
		EmergencyName  *string
		EmergencyPhone *string
		CountryID      *int64
		CountryCode    *string
		CountryName    *string
	}
	Users []*User
)
