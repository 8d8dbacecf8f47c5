package models

// Session is the authenticated identity and credential pair held by the
// client. User is non-nil if and only if AccessToken is non-empty; partial
// states are treated as logged out.
type Session struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// LoggedIn reports whether the session holds both an identity and a token.
func (s Session) LoggedIn() bool {
	return s.User != nil && s.AccessToken != ""
}

// TokenResponse is the backend's reply to login, signup, google auth and
// token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	User         *User  `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type GoogleAuthRequest struct {
	Code string `json:"code"`
}
