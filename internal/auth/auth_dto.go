package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	ClientID string `json:"clientId,omitempty"`
}

// LoginResult is the data part of the auth API login envelope.
type LoginResult struct {
	Token       string       `json:"token"`
	AccessToken string       `json:"accessToken"`
	User        AuthResponse `json:"user"`
}

func (r LoginResult) BearerToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

type SessionResponse struct {
	SessionID string       `json:"sessionId"`
	User      AuthResponse `json:"user"`
}
