package domain

// AuthClaims identifies the caller of an authenticated request.
type AuthClaims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
}
