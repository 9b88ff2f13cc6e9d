package graphql

import (
	"time"

	"go.appointy.com/jaal/schemabuilder"

	"user-registry-api/internal/domain/user"
	authDTO "user-registry-api/internal/interface/api/graphql/dto/auth"
	userDTO "user-registry-api/internal/interface/api/graphql/dto/user"
)

// RegisterObjects declares the output types. Field funcs map domain structs
// onto the wire names; the password hash is deliberately never exposed.
func RegisterObjects(sb *schemabuilder.Schema) {
	appUser := sb.Object("AppUser", user.User{})
	appUser.FieldFunc("id", func(u *user.User) int64 { return int64(u.ID) })
	appUser.FieldFunc("username", func(u *user.User) string { return u.Username })
	appUser.FieldFunc("email", func(u *user.User) string { return u.Email })
	appUser.FieldFunc("name", func(u *user.User) string { return u.Name })
	appUser.FieldFunc("lastName", func(u *user.User) string { return u.LastName })
	appUser.FieldFunc("isMilitar", func(u *user.User) bool { return u.IsMilitar })
	appUser.FieldFunc("isTemporal", func(u *user.User) bool { return u.IsTemporal })
	appUser.FieldFunc("timeCreate", func(u *user.User) string { return u.TimeCreate.Format(time.RFC3339) })
	appUser.FieldFunc("emailVerified", func(u *user.User) bool { return u.EmailVerified })
	appUser.FieldFunc("document", func(u *user.User) *user.Document { return u.Document })
	appUser.FieldFunc("contactInfo", func(u *user.User) *user.ContactInfo { return u.ContactInfo })

	doc := sb.Object("UserDocument", user.Document{})
	doc.FieldFunc("document", func(d *user.Document) string { return d.Document })
	doc.FieldFunc("placeExpedition", func(d *user.Document) string { return d.PlaceExpedition })
	doc.FieldFunc("dateExpedition", func(d *user.Document) string { return d.DateExpedition.Format("2006-01-02") })
	doc.FieldFunc("typeDocument", func(d *user.Document) *user.TypeDocument { return d.TypeDocument })

	typeDoc := sb.Object("TypeDocument", user.TypeDocument{})
	typeDoc.FieldFunc("nameTypeDocument", func(td *user.TypeDocument) string { return td.NameTypeDocument })

	contact := sb.Object("ContactInfo", user.ContactInfo{})
	contact.FieldFunc("address", func(c *user.ContactInfo) string { return c.Address })
	contact.FieldFunc("city", func(c *user.ContactInfo) string { return c.City })
	contact.FieldFunc("phone", func(c *user.ContactInfo) string { return c.Phone })
	contact.FieldFunc("cellPhone", func(c *user.ContactInfo) string { return c.CellPhone })
	contact.FieldFunc("emergencyName", func(c *user.ContactInfo) string { return c.EmergencyName })
	contact.FieldFunc("emergencyPhone", func(c *user.ContactInfo) string { return c.EmergencyPhone })
	contact.FieldFunc("country", func(c *user.ContactInfo) *user.Country { return c.Country })

	country := sb.Object("Country", user.Country{})
	country.FieldFunc("countryCode", func(c *user.Country) string { return c.CountryCode })
	country.FieldFunc("countryName", func(c *user.Country) string { return c.CountryName })

	resp := sb.Object("RegisterResponse", userDTO.RegisterResponse{})
	resp.FieldFunc("success", func(r *userDTO.RegisterResponse) bool { return r.Success })
	resp.FieldFunc("message", func(r *userDTO.RegisterResponse) string { return r.Message })

	auth := sb.Object("AuthPayload", authDTO.AuthPayload{})
	auth.FieldFunc("accessToken", func(a *authDTO.AuthPayload) string { return a.AccessToken })
	auth.FieldFunc("tokenType", func(a *authDTO.AuthPayload) string { return a.TokenType })
}
