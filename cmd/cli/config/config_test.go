package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIURL(t *testing.T) {
	t.Setenv("FOLIO_API_URL", "")
	assert.Equal(t, defaultAPIURL, APIURL())

	t.Setenv("FOLIO_API_URL", "https://api.example/")
	assert.Equal(t, "https://api.example", APIURL())
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("FOLIO_TOKEN_FILE", filepath.Join(t.TempDir(), "token"))

	_, err := ReadToken()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	require.NoError(t, SaveToken("abc.def.ghi"))
	tok, err := ReadToken()
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	require.NoError(t, RemoveToken())
	require.NoError(t, RemoveToken())
	_, err = ReadToken()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
