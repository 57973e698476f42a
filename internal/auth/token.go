package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mp11089219/kanban-board-website/internal/models"
)

// TokenTTL matches the historical 24 hour token lifetime.
const TokenTTL = 86400 * time.Second

// Claims embeds the full user record, password hash included. The original
// API signed the whole stored user document into the token and clients were
// written against that, so the shape is kept as-is.
type Claims struct {
	jwt.RegisteredClaims
	User models.User `json:"user"`
}

// TokenService signs and verifies bearer tokens with a single HMAC secret
// loaded at startup.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token carrying the user identity, expiring TokenTTL from now.
func (s *TokenService) Issue(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
		User: user,
	})
	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the embedded claims.
// Expired and tampered tokens are not distinguished; callers only get an
// error.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}
