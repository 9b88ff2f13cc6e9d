package auth

type AuthPayload struct {
	AccessToken string
	TokenType   string
}
