// Package errors defines the error taxonomy for the IronVault secrets vault.
// These errors provide detailed information for debugging while maintaining
// security by never including key material or passphrase bytes in an error
// message.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for key-family operations (pkg/keyops)
var (
	// ErrKeyGeneration indicates the CSPRNG failed while generating a key.
	ErrKeyGeneration = errors.New("keyops: key generation failed")

	// ErrSaltGeneration indicates the CSPRNG failed while generating a salt.
	ErrSaltGeneration = errors.New("keyops: salt generation failed")

	// ErrSaltLength indicates a salt shorter than the minimum was supplied
	// to DeriveKey.
	ErrSaltLength = errors.New("keyops: salt is too short for key derivation")
)

// Sentinel errors for blob/storage operations (pkg/blob)
var (
	// ErrKeyLength indicates a key whose length does not match the AEAD
	// algorithm's required key length.
	ErrKeyLength = errors.New("blob: key length does not match algorithm")

	// ErrKey indicates the AEAD cipher could not be constructed from the key.
	ErrKey = errors.New("blob: could not construct cipher from key")

	// ErrNonceGeneration indicates the CSPRNG failed while generating a nonce.
	ErrNonceGeneration = errors.New("blob: nonce generation failed")

	// ErrDecryption indicates AEAD authentication failed on open: wrong
	// key, wrong passphrase, or corrupted/tampered ciphertext.
	ErrDecryption = errors.New("blob: decryption failed")

	// ErrEncryption indicates the AEAD seal operation failed on write.
	ErrEncryption = errors.New("blob: encryption failed")

	// ErrCiphertextTooShort indicates a blob's raw bytes are shorter than
	// the envelope overhead, so it cannot contain a nonce and tag.
	ErrCiphertextTooShort = errors.New("blob: ciphertext too short to contain envelope")

	// ErrString indicates a blob's contents are not valid UTF-8 on
	// ReadString.
	ErrString = errors.New("blob: contents are not valid utf-8")

	// ErrSerialization indicates a JSON marshal/unmarshal failure in
	// ReadObject/WriteObject.
	ErrSerialization = errors.New("blob: json serialization failed")
)

// Sentinel errors for vault-level operations (pkg/vault)
var (
	// ErrVaultAlreadyExists indicates Create was called against a vault
	// directory that already exists.
	ErrVaultAlreadyExists = errors.New("vault: already exists")

	// ErrVaultGeneration indicates the vault directory could not be created.
	ErrVaultGeneration = errors.New("vault: could not create vault directory")

	// ErrVaultNotFound names the condition of a vault directory that does
	// not exist or is missing one of its three files. pkg/vault does not
	// return it: Open reports a missing config file as a
	// ConfigurationFileError wrapping a FileError.
	ErrVaultNotFound = errors.New("vault: not found")

	// ErrRecordNotFound names the condition of a lookup with no matching
	// record. pkg/vault does not return it: GetRecordByUUID reports a miss
	// with ok=false and GetRecordsByName with an empty result.
	ErrRecordNotFound = errors.New("vault: record not found")

	// ErrUnknown covers conditions the vault cannot otherwise classify,
	// such as being unable to resolve the user's home directory.
	ErrUnknown = errors.New("vault: unknown error")
)

// FileError wraps an OS-level error encountered opening, reading, or
// writing one of the vault's three on-disk files.
type FileError struct {
	Op   string // "open", "read", "write", "create", "mkdir", "stat"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(op, path string, err error) *FileError {
	return &FileError{Op: op, Path: path, Err: err}
}

// VaultStorageError wraps a storage-family error (a FileError or one of
// the blob sentinels above) with the vault operation that triggered it.
type VaultStorageError struct {
	Op  string // e.g. "open-key", "write-key", "open-storage", "write-storage"
	Err error
}

func (e *VaultStorageError) Error() string {
	return fmt.Sprintf("vault storage %s: %v", e.Op, e.Err)
}

func (e *VaultStorageError) Unwrap() error {
	return e.Err
}

// NewVaultStorageError creates a new VaultStorageError.
func NewVaultStorageError(op string, err error) *VaultStorageError {
	return &VaultStorageError{Op: op, Err: err}
}

// VaultKeyError wraps a key-family error encountered while deriving or
// unwrapping key material during create/open.
type VaultKeyError struct {
	Op  string // e.g. "derive", "wrap", "unwrap"
	Err error
}

func (e *VaultKeyError) Error() string {
	return fmt.Sprintf("vault key %s: %v", e.Op, e.Err)
}

func (e *VaultKeyError) Unwrap() error {
	return e.Err
}

// NewVaultKeyError creates a new VaultKeyError.
func NewVaultKeyError(op string, err error) *VaultKeyError {
	return &VaultKeyError{Op: op, Err: err}
}

// ConfigurationFileError wraps a failure reading or writing the plaintext
// configuration file.
type ConfigurationFileError struct {
	Op  string // e.g. "read", "write", "parse"
	Err error
}

func (e *ConfigurationFileError) Error() string {
	return fmt.Sprintf("configuration file %s: %v", e.Op, e.Err)
}

func (e *ConfigurationFileError) Unwrap() error {
	return e.Err
}

// NewConfigurationFileError creates a new ConfigurationFileError.
func NewConfigurationFileError(op string, err error) *ConfigurationFileError {
	return &ConfigurationFileError{Op: op, Err: err}
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
