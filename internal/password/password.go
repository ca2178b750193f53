// Package password hashes and verifies user passwords. New hashes are bcrypt;
// argon2id hashes are verified too so either format can be provisioned.
package password

import (
	"errors"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

const (
	AlgoBcrypt   = "bcrypt"
	AlgoArgon2id = "argon2id"
)

var ErrUnknownAlgo = errors.New("unknown hash algorithm")

// Hash returns a salted hash of plain using algo.
func Hash(plain, algo string) (string, error) {
	switch algo {
	case "", AlgoBcrypt:
		b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case AlgoArgon2id:
		return argon2id.CreateHash(plain, argon2id.DefaultParams)
	default:
		return "", ErrUnknownAlgo
	}
}

// Compare reports whether plain matches hash. A mismatch is (false, nil);
// an error means the stored hash itself is unusable.
func Compare(hash, plain string) (bool, error) {
	if strings.HasPrefix(hash, "$argon2id$") {
		return argon2id.ComparePasswordAndHash(plain, hash)
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
