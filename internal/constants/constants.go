// Package constants defines the byte lengths, iteration policy, and
// filesystem layout constants for the IronVault secrets vault.
package constants

// Environment and filesystem layout.
const (
	// EnvVaultPath is the environment variable that overrides the default
	// vault directory when no explicit path is supplied.
	EnvVaultPath = "IRONVAULT_DATABASE"

	// DefaultVaultDirName is the directory created under the user's home
	// directory when neither an explicit path nor EnvVaultPath is set.
	DefaultVaultDirName = ".ironvault"

	// ConfigFileName holds the plaintext Configuration (salt).
	ConfigFileName = "config"

	// KeyFileName holds the wrapped data-encryption key.
	KeyFileName = "key"

	// StorageFileName holds the encrypted record collection.
	StorageFileName = "storage"
)

// Salt parameters.
const (
	// SaltSize is the length in bytes of a freshly generated Configuration salt.
	SaltSize = 16

	// MinSaltSize is the minimum salt length DeriveKey will accept. Salts of
	// this length or shorter are rejected with ErrSaltLength.
	MinSaltSize = 4
)

// CHACHA20-POLY1305 parameters (RFC 8439). This is the only
// AEAD algorithm the vault uses; KeyOps and EncryptedBlob both size their
// buffers from these constants rather than hardcoding 32/12/16 inline.
const (
	AEADKeySize   = 32
	AEADNonceSize = 12
	AEADTagSize   = 16
)

// BlobOverhead is the EncryptedBlob envelope overhead: nonce prefix plus
// trailing tag.
const BlobOverhead = AEADNonceSize + AEADTagSize

// Iteration policy. The extension is offset by one so the final count is
// always strictly greater than IterationsBase, never equal to it.
const (
	// IterationsBase is the minimum PBKDF2 iteration count before the
	// per-passphrase extension is added.
	IterationsBase = 100_000

	// IterationsExtensionModulus bounds the per-passphrase extension added
	// to IterationsBase. The extension is computed mod this value.
	IterationsExtensionModulus = 10_000
)
