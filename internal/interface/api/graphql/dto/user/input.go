package user

// Input shapes for registerUser. Every field is non-nullable at the
// boundary, which the schema enforces through the non-pointer types.
type (
	DocumentInput struct {
		Document        string
		TypeDocumentID  int64
		PlaceExpedition string
		DateExpedition  string
	}

	ContactInput struct {
		Address        string
		City           string
		Phone          string
		CellPhone      string
		EmergencyName  string
		EmergencyPhone string
		CountryID      int64
	}

	RegisterUserInput struct {
		Username   string
		Email      string
		Password   string
		Name       string
		LastName   string
		IsMilitar  bool
		IsTemporal bool
		Document   DocumentInput
		Contact    ContactInput
	}

	RegisterResponse struct {
		Success bool
		Message string
	}
)
