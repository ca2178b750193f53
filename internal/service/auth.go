package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/crucial707/folio-api/internal/errs"
	"github.com/crucial707/folio-api/internal/metrics"
	"github.com/crucial707/folio-api/internal/models"
	"github.com/crucial707/folio-api/internal/password"
)

type UserFinder interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type TokenIssuer interface {
	Issue(u models.User) (string, error)
}

// AuthService exchanges credentials for a session token.
type AuthService struct {
	users  UserFinder
	tokens TokenIssuer
}

func NewAuthService(users UserFinder, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// Unknown usernames still pay for one hash comparison so response timing does
// not reveal which usernames exist.
func burnComparison(plain string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = password.Hash("folio-dummy-password", password.AlgoBcrypt)
	})
	_, _ = password.Compare(dummyHash, plain)
}

// Login returns a signed token for valid credentials. Unknown users and wrong
// passwords both yield errs.ErrAuthenticationFailed.
func (s *AuthService) Login(ctx context.Context, username, plain string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errs.IsNotFound(err) {
		burnComparison(plain)
		metrics.IncLoginAttempts("failure")
		return "", errs.ErrAuthenticationFailed
	}
	if err != nil {
		metrics.IncLoginAttempts("error")
		return "", err
	}

	ok, err := password.Compare(user.PasswordHash, plain)
	if err != nil {
		metrics.IncLoginAttempts("error")
		return "", fmt.Errorf("verify password for user %s: %w", user.ID, err)
	}
	if !ok {
		metrics.IncLoginAttempts("failure")
		return "", errs.ErrAuthenticationFailed
	}

	signed, err := s.tokens.Issue(*user)
	if err != nil {
		metrics.IncLoginAttempts("error")
		return "", fmt.Errorf("issue token: %w", err)
	}
	metrics.IncLoginAttempts("success")
	return signed, nil
}
