package dto

// GoogleAuthRequest carries the Google ID token from the SPA.
type GoogleAuthRequest struct {
	Token string `json:"token" validate:"required"`
}

// AuthResponse returns the API's own bearer credential.
type AuthResponse struct {
	Token string `json:"token"`
}
