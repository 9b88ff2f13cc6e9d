package user

import (
	domain "user-registry-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	u := &domain.User{
		ID:            domain.ID(model.ID),
		Username:      model.Username,
		Email:         model.Email,
		PasswordHash:  model.PasswordHash,
		Name:          model.Name,
		LastName:      model.LastName,
		IsMilitar:     model.IsMilitar,
		IsTemporal:    model.IsTemporal,
		TimeCreate:    model.TimeCreate,
		EmailVerified: model.EmailVerified,
	}

	if model.Document != nil {
		u.Document = &domain.Document{
			Document:        *model.Document,
			PlaceExpedition: derefString(model.PlaceExpedition),
		}
		if model.TypeDocumentID != nil {
			u.Document.TypeDocumentID = domain.ID(*model.TypeDocumentID)
		}
		if model.DateExpedition != nil {
			u.Document.DateExpedition = *model.DateExpedition
		}
		if model.NameTypeDocument != nil {
			u.Document.TypeDocument = &domain.TypeDocument{
				ID:               u.Document.TypeDocumentID,
				NameTypeDocument: *model.NameTypeDocument,
			}
		}
	}

	if model.Address != nil {
		u.ContactInfo = &domain.ContactInfo{
			Address:        *model.Address,
			City:           derefString(model.City),
			Phone:          derefString(model.Phone),
			CellPhone:      derefString(model.CellPhone),
			EmergencyName:  derefString(model.EmergencyName),
			EmergencyPhone: derefString(model.EmergencyPhone),
		}
		if model.CountryID != nil {
			u.ContactInfo.CountryID = domain.ID(*model.CountryID)
		}
		if model.CountryCode != nil && model.CountryName != nil {
			u.ContactInfo.Country = &domain.Country{
				ID:          u.ContactInfo.CountryID,
				CountryCode: *model.CountryCode,
				CountryName: *model.CountryName,
			}
		}
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
