// Package token issues and verifies the HS256 session tokens handed out by
// /login. Tokens carry the user id as subject plus the username and are never
// stored server side.
package token

import (
	"time"

	"github.com/crucial707/folio-api/internal/errs"
	"github.com/crucial707/folio-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the session length used when none is configured.
const DefaultTTL = time.Hour

// Claims is the decoded token payload.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret []byte, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: secret, ttl: ttl, now: time.Now}
}

// Issue signs a token for u that expires after the configured TTL.
func (s *Service) Issue(u models.User) (string, error) {
	now := s.now()
	claims := Claims{
		Username: u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry. Every rejection is errs.ErrInvalidToken.
func (s *Service) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, errs.ErrInvalidToken
	}
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !tok.Valid {
		return nil, errs.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, errs.ErrInvalidToken
	}
	return claims, nil
}
