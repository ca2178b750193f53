package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashCompare(t *testing.T) {
	for _, algo := range []string{AlgoBcrypt, AlgoArgon2id} {
		t.Run(algo, func(t *testing.T) {
			hash, err := Hash("correct horse", algo)
			require.NoError(t, err)
			assert.NotEqual(t, "correct horse", hash)

			ok, err := Compare(hash, "correct horse")
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = Compare(hash, "wrong")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestHash_Salted(t *testing.T) {
	a, err := Hash("same", AlgoBcrypt)
	require.NoError(t, err)
	b, err := Hash("same", AlgoBcrypt)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHash_UnknownAlgo(t *testing.T) {
	_, err := Hash("x", "md5")
	assert.ErrorIs(t, err, ErrUnknownAlgo)
}

func TestCompare_CorruptHash(t *testing.T) {
	ok, err := Compare("not-a-hash", "x")
	assert.False(t, ok)
	assert.Error(t, err)
}
