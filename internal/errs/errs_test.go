package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusAndMessage(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"invalid input", InvalidInput("name is required"), http.StatusBadRequest, "invalid input: name is required"},
		{"bad credentials", ErrAuthenticationFailed, http.StatusUnauthorized, "invalid credentials"},
		{"bad token", ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{"missing", ErrNotFound, http.StatusNotFound, "not found"},
		{"upload", Upload(errors.New("cdn down")), http.StatusBadGateway, "image upload failed"},
		{"store", Store("list projects", errors.New("conn refused")), http.StatusInternalServerError, "internal server error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, Status(tc.err))
			assert.Equal(t, tc.message, Message(tc.err))
		})
	}
}

func TestWrappersKeepKind(t *testing.T) {
	err := Store("get project", errors.New("timeout"))
	assert.True(t, IsStore(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "get project")

	assert.True(t, IsUploadFailed(Upload(errors.New("x"))))
	assert.True(t, IsInvalidInput(InvalidInput("x")))
}
