package dto

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=80"`
	Password string `json:"password" form:"password" validate:"required,max=200"`
}

type SessionResponse struct {
	Username        string `json:"username"`
	IsAuthenticated bool   `json:"is_authenticated"`
	ExpiresAt       string `json:"expires_at"`
}
