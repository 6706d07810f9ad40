// Package crypto provides the low-level cryptographic primitives shared by
// pkg/keyops and pkg/blob: secure randomness, constant-time comparison,
// zeroization, and the fixed CHACHA20-POLY1305 algorithm descriptor.
//
// Security Note: All random number generation uses crypto/rand, which
// sources entropy from the operating system's CSPRNG.
package crypto

import (
	"crypto/rand"
	"io"
)

// SecureRandom reads cryptographically secure random bytes into the provided slice.
// It uses crypto/rand.Read which sources entropy from the OS CSPRNG.
//
// This function will only return an error if the system's random number generator
// fails, which should be treated as a critical system failure. It returns the raw
// OS error rather than one of the package/vault error types: pkg/crypto sits below
// pkg/keyops and pkg/blob, and has no opinion on which family (key generation, salt
// generation, nonce generation) a caller should classify the failure as.
func SecureRandom(b []byte) error {
	_, err := io.ReadFull(rand.Reader, b)
	return err
}

// SecureRandomBytes returns n cryptographically secure random bytes.
// Returns an error if the system's CSPRNG fails.
func SecureRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := SecureRandom(b); err != nil {
		return nil, err
	}
	return b, nil
}

// MustSecureRandom reads cryptographically secure random bytes into the provided slice.
// It panics if the system's CSPRNG fails, as this indicates a critical system failure.
//
// Use this function only in contexts where CSPRNG failure should be unrecoverable.
func MustSecureRandom(b []byte) {
	if err := SecureRandom(b); err != nil {
		panic("crypto: failed to read from CSPRNG: " + err.Error())
	}
}

// MustSecureRandomBytes returns n cryptographically secure random bytes.
// It panics if the system's CSPRNG fails.
func MustSecureRandomBytes(n int) []byte {
	b := make([]byte, n)
	MustSecureRandom(b)
	return b
}

// Reader is an io.Reader that returns cryptographically secure random bytes.
// It is crypto/rand.Reader itself, re-exported under this package.
var Reader = rand.Reader

// ConstantTimeCompare compares two byte slices in constant time.
// Returns true if the slices are equal, false otherwise.
// This prevents timing attacks when comparing secrets.
func ConstantTimeCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var result byte
	for i := range a {
		result |= a[i] ^ b[i]
	}
	return result == 0
}

// Zeroize securely erases sensitive data from memory by overwriting with zeros.
// pkg/vault calls it on the derived key-encryption key when Create or Open
// returns, and on the data-encryption key when Create fails to wrap it.
//
// Note: the Go runtime may have already copied the data, and the compiler may
// optimize away the zeroing. For maximum security, consider memory protections
// at the OS level in production deployments.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ZeroizeMultiple securely erases multiple byte slices.
func ZeroizeMultiple(slices ...[]byte) {
	for _, s := range slices {
		Zeroize(s)
	}
}
