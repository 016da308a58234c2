// AngelaMos | 2026
// dto.go

package auth

import (
	"time"
)

type TokenRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresIn int       `json:"expiresIn"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type RevokeResponse struct {
	Revoked bool `json:"revoked"`
}
