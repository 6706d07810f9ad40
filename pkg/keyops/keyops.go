// Package keyops implements the vault's key hierarchy primitives: random
// key and salt generation, and passphrase-based key derivation with the
// per-passphrase iteration-count policy.
package keyops

import (
	"crypto/sha256"
	"hash/fnv"

	"golang.org/x/crypto/pbkdf2"

	"github.com/apsislabs/iron-vault/internal/constants"
	qerrors "github.com/apsislabs/iron-vault/internal/errors"
	qcrypto "github.com/apsislabs/iron-vault/pkg/crypto"
)

// GenerateKey returns algorithm.KeySize cryptographically secure random
// bytes, suitable for use as a data-encryption key. On failure it returns
// the key-family leaf error ErrKeyGeneration; callers above this package
// (pkg/vault) wrap it in their own vault-level error.
func GenerateKey(algorithm qcrypto.Algorithm) ([]byte, error) {
	key, err := qcrypto.SecureRandomBytes(algorithm.KeySize)
	if err != nil {
		return nil, qerrors.ErrKeyGeneration
	}
	return key, nil
}

// GenerateSalt returns a fresh 16-byte salt for a newly created vault's
// Configuration. On failure it returns the key-family leaf error
// ErrSaltGeneration; callers above this package wrap it in their own
// vault-level error.
func GenerateSalt() ([]byte, error) {
	salt, err := qcrypto.SecureRandomBytes(constants.SaltSize)
	if err != nil {
		return nil, qerrors.ErrSaltGeneration
	}
	return salt, nil
}

// DeriveKey derives an algorithm.KeySize key-encryption key from a
// passphrase and salt using PBKDF2-HMAC-SHA256. The iteration count is
// determined by Iterations(passphrase). Salts of length <= MinSaltSize are
// rejected with the key-family leaf error ErrSaltLength; callers above this
// package wrap it in their own vault-level error.
func DeriveKey(algorithm qcrypto.Algorithm, salt, passphrase []byte) ([]byte, error) {
	if len(salt) <= constants.MinSaltSize {
		return nil, qerrors.ErrSaltLength
	}
	return pbkdf2.Key(passphrase, salt, Iterations(passphrase), algorithm.KeySize, sha256.New), nil
}

// Iterations computes the per-passphrase PBKDF2 iteration count: a
// deterministic, non-cryptographic hash of the passphrase extends a base
// iteration count so GPU-parallel attacks cannot share iteration-count
// state across passphrase guesses.
//
// The hash is FNV-1a 64-bit (hash/fnv), truncated to its low 32 bits. FNV-1a
// is pinned rather than left to a language/runtime default because the
// iteration count must be reproducible on every platform that opens this
// vault format — a non-deterministic or version-dependent hash would make
// vaults unopenable after an upgrade.
//
// The result is always strictly greater than constants.IterationsBase: the
// modulus result is shifted up by 1 before being added, so an extension of
// zero is never possible and the base count alone is never used.
func Iterations(passphrase []byte) uint32 {
	h := fnv.New64a()
	h.Write(passphrase)
	sum := h.Sum64()
	truncated := uint32(sum)
	extension := (truncated % constants.IterationsExtensionModulus) + 1
	return constants.IterationsBase + extension
}
