package user

import (
	"time"
)

type (
	ID int64

	// User is a registered account together with its 1:1 relations.
	// Document and ContactInfo are nil until the owning registration
	// completed, or when the read did not ask for expansion.
	User struct {
		ID            ID
		Username      string
		Email         string
		PasswordHash  string
		Name          string
		LastName      string
		IsMilitar     bool
		IsTemporal    bool
		TimeCreate    time.Time
		EmailVerified bool

		Document    *Document
		ContactInfo *ContactInfo
	}
	Users []*User

	// Document is the identity document owned by exactly one user.
	Document struct {
		Document        string
		TypeDocumentID  ID
		PlaceExpedition string
		DateExpedition  time.Time

		TypeDocument *TypeDocument
	}

	// TypeDocument is seeded reference data, read-only afterwards.
	TypeDocument struct {
		ID               ID
		NameTypeDocument string
	}

	// ContactInfo is the contact/location record owned by exactly one user.
	ContactInfo struct {
		Address        string
		City           string
		Phone          string
		CellPhone      string
		EmergencyName  string
		EmergencyPhone string
		CountryID      ID

		Country *Country
	}

	// Country is seeded reference data, read-only afterwards.
	Country struct {
		ID          ID
		CountryCode string
		CountryName string
	}

	// Registration carries everything needed to create a user with its
	// document and contact rows in one atomic unit. The service layer fills
	// PasswordHash, the plaintext password never reaches the gateway.
	Registration struct {
		Username     string
		Email        string
		PasswordHash string
		Name         string
		LastName     string
		IsMilitar    bool
		IsTemporal   bool
		Document     Document
		Contact      ContactInfo
	}
)
