package dto

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refreshToken"`
	Profile      ProfileResponse `json:"profile"`
}

// RefreshTokenRequest carries the refresh token being exchanged. The token
// itself may also arrive via the HTTP-only cookie set at login, in which case
// the body only names the profile.
type RefreshTokenRequest struct {
	ProfileID    string `json:"profileID" binding:"required"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
// Refresh tokens rotate: the old one is invalidated on every exchange.
type RefreshTokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}
