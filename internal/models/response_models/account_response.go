package response_models

type AuthResponse struct {
	AccountID  string `json:"account_id"`
	Email      string `json:"email"`
	HasAccess  bool   `json:"has_access"`
	RedirectTo string `json:"redirect_to"`
}

type SessionResponse struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	HasAccess bool   `json:"has_access"`
	ExpiresAt int64  `json:"expires_at"`
}
