package token

import (
	"testing"
	"time"

	"github.com/crucial707/folio-api/internal/errs"
	"github.com/crucial707/folio-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = models.User{ID: "9a1f0c52-4b8e-4f0a-8a56-1f6f0c9b2d33", Username: "alice"}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := NewService([]byte("secret"), time.Hour)

	raw, err := svc.Issue(alice)
	require.NoError(t, err)

	claims, err := svc.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerify_FailsAfterExpiry(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService([]byte("secret"), time.Hour)
	svc.now = fixedClock(issuedAt)

	raw, err := svc.Issue(alice)
	require.NoError(t, err)

	svc.now = fixedClock(issuedAt.Add(59 * time.Minute))
	_, err = svc.Verify(raw)
	require.NoError(t, err, "still valid before expiry")

	svc.now = fixedClock(issuedAt.Add(61 * time.Minute))
	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestVerify_Rejects(t *testing.T) {
	svc := NewService([]byte("secret"), time.Hour)
	other := NewService([]byte("other-secret"), time.Hour)

	foreign, err := other.Issue(alice)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": alice.ID}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": alice.ID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"empty":        "",
		"garbage":      "not.a.token",
		"wrong secret": foreign,
		"missing exp":  noExp,
		"missing sub":  noSub,
		"alg none":     unsigned,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(raw)
			assert.ErrorIs(t, err, errs.ErrInvalidToken)
		})
	}
}

func TestNewService_DefaultTTL(t *testing.T) {
	svc := NewService([]byte("s"), 0)
	assert.Equal(t, DefaultTTL, svc.ttl)
}
