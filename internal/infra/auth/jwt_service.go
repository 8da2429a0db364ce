// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	"nearby/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer    = "nearby-hub"
	accessTTL = 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    accessTTL,
		now:          time.Now,
	}, nil
}

// GenerateToken signs an access token carrying the identity's id, role and name.
func (s *jwtService) GenerateToken(identity entity.Identity) (string, error) {
	if identity.UserID == "" || !identity.Role.IsValid() {
		return "", errors.Errorf("invalid identity %q/%q", identity.UserID, identity.Role)
	}

	now := s.now()
	claims := service.Claims{
		Roles: []string{identity.Role.String()},
		Name:  identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// ValidateToken checks signature and expiry and returns the identity of the token.
func (s *jwtService) ValidateToken(tokenString string) (*entity.Identity, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	return identityFromClaims(claims)
}

// IdentityFromToken reads the identity of a token without verifying it.
// Agents use it to learn who they are; only the hub trusts a token.
func IdentityFromToken(tokenString string) (*entity.Identity, error) {
	claims := &service.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	return identityFromClaims(claims)
}

func identityFromClaims(claims *service.Claims) (*entity.Identity, error) {
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	role, ok := entity.RoleFromClaims(claims.Roles)
	if !ok {
		return nil, errors.Errorf("token has no known role in %v", claims.Roles)
	}

	return &entity.Identity{
		UserID: claims.Subject,
		Role:   role,
		Name:   claims.Name,
	}, nil
}

// NewAgentIdentity reads the identity an agent runs as from its transport token.
func NewAgentIdentity(cfg *config.Config) (entity.Identity, error) {
	if cfg.Transport == nil || cfg.Transport.Token == "" {
		return entity.Identity{}, errors.New("transport token is required")
	}

	identity, err := IdentityFromToken(cfg.Transport.Token)
	if err != nil {
		return entity.Identity{}, err
	}

	return *identity, nil
}
