package service

import (
	"nearby/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Roles []string `json:"roles"`
	Name  string   `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the credentials presented at the handshake.
type TokenService interface {
	// GenerateToken signs an access token for the identity.
	GenerateToken(identity entity.Identity) (string, error)

	// ValidateToken parses a token and returns the identity it carries.
	ValidateToken(tokenString string) (*entity.Identity, error)
}
