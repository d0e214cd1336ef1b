package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shoeshop/internal/models"
)

// tokenTTL is how long an issued session token stays valid. Tokens are
// stateless and cannot be revoked before expiry.
const tokenTTL = 7 * 24 * time.Hour

// Claims are the assertions embedded in every session token. Subject carries
// the username.
type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed session tokens.
type TokenService struct {
	secret []byte
	leeway time.Duration // clock-skew tolerance applied during verification
	now    func() time.Time
}

// NewTokenService creates a new TokenService signing with the given symmetric
// secret. leeway is the accepted clock skew when validating expiry.
func NewTokenService(secret string, leeway time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		leeway: leeway,
		now:    time.Now,
	}
}

// Issue produces a signed token embedding the subject and role claims, valid
// for seven days from now.
func (s *TokenService) Issue(username string, role models.Role) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify parses and validates a token, returning its claims. Malformed
// tokens, bad signatures, unexpected algorithms and expired tokens all fail.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("invalid token: unknown role %q", claims.Role)
	}
	return claims, nil
}
