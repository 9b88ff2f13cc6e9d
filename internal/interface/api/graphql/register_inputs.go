package graphql

import (
	"go.appointy.com/jaal/schemabuilder"

	userDTO "user-registry-api/internal/interface/api/graphql/dto/user"
)

// RegisterInputs declares the mutation input objects. Setter funcs copy each
// wire field into the target struct.
func RegisterInputs(sb *schemabuilder.Schema) {
	doc := sb.InputObject("DocumentInput", userDTO.DocumentInput{})
	doc.FieldFunc("document", func(target *userDTO.DocumentInput, source string) { target.Document = source })
	doc.FieldFunc("typeDocumentID", func(target *userDTO.DocumentInput, source int64) { target.TypeDocumentID = source })
	doc.FieldFunc("placeExpedition", func(target *userDTO.DocumentInput, source string) { target.PlaceExpedition = source })
	doc.FieldFunc("dateExpedition", func(target *userDTO.DocumentInput, source string) { target.DateExpedition = source })

	contact := sb.InputObject("ContactInput", userDTO.ContactInput{})
	contact.FieldFunc("address", func(target *userDTO.ContactInput, source string) { target.Address = source })
	contact.FieldFunc("city", func(target *userDTO.ContactInput, source string) { target.City = source })
	contact.FieldFunc("phone", func(target *userDTO.ContactInput, source string) { target.Phone = source })
	contact.FieldFunc("cellPhone", func(target *userDTO.ContactInput, source string) { target.CellPhone = source })
	contact.FieldFunc("emergencyName", func(target *userDTO.ContactInput, source string) { target.EmergencyName = source })
	contact.FieldFunc("emergencyPhone", func(target *userDTO.ContactInput, source string) { target.EmergencyPhone = source })
	contact.FieldFunc("countryID", func(target *userDTO.ContactInput, source int64) { target.CountryID = source })

	reg := sb.InputObject("RegisterUserInput", userDTO.RegisterUserInput{})
	reg.FieldFunc("username", func(target *userDTO.RegisterUserInput, source string) { target.Username = source })
	reg.FieldFunc("email", func(target *userDTO.RegisterUserInput, source string) { target.Email = source })
	reg.FieldFunc("password", func(target *userDTO.RegisterUserInput, source string) { target.Password = source })
	reg.FieldFunc("name", func(target *userDTO.RegisterUserInput, source string) { target.Name = source })
	reg.FieldFunc("lastName", func(target *userDTO.RegisterUserInput, source string) { target.LastName = source })
	reg.FieldFunc("isMilitar", func(target *userDTO.RegisterUserInput, source bool) { target.IsMilitar = source })
	reg.FieldFunc("isTemporal", func(target *userDTO.RegisterUserInput, source bool) { target.IsTemporal = source })
	reg.FieldFunc("document", func(target *userDTO.RegisterUserInput, source userDTO.DocumentInput) { target.Document = source })
	reg.FieldFunc("contact", func(target *userDTO.RegisterUserInput, source userDTO.ContactInput) { target.Contact = source })
}
