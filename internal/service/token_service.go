package service

import (
	"time"

	"github.com/filmbox/movie-collection-website/internal/config"
	"github.com/filmbox/movie-collection-website/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and verifies stateless session tokens. There is no
// revocation store: a token stays valid until its lifetime elapses or the
// secret rotates.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
	parser   *jwt.Parser
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret:   []byte(cfg.TokenSecret),
		lifetime: cfg.TokenLifetime,
		// Strict decoding rejects non-zero base64 padding bits, so a token
		// differing from the signed one in any single bit never verifies.
		parser: jwt.NewParser(
			jwt.WithStrictDecoding(),
			jwt.WithValidMethods([]string{"HS256"}),
		),
	}
}

// Issue signs a {sub, iat} payload for the user. Lifetime is measured from
// iat at verification time, not stored in the token.
func (s *TokenService) Issue(userID uuid.UUID) (string, error) {
	if len(s.secret) == 0 {
		return "", domain.ErrNotConfigured
	}

	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify returns the subject user ID when the signature checks out and the
// token is younger than the configured lifetime. Any tampering, malformed
// payload, or stale iat yields ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (uuid.UUID, error) {
	if len(s.secret) == 0 {
		return uuid.Nil, domain.ErrNotConfigured
	}

	token, err := s.parser.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domain.ErrInvalidToken
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return uuid.Nil, domain.ErrInvalidToken
	}
	if time.Since(time.Unix(int64(iat), 0)) > s.lifetime {
		return uuid.Nil, domain.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, domain.ErrInvalidToken
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	return userID, nil
}
