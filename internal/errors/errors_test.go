package errors

import (
	"errors"
	"strings"
	"testing"
)

// TestFileError tests the FileError type.
func TestFileError(t *testing.T) {
	baseErr := errors.New("permission denied")
	ferr := NewFileError("open", "/home/user/.ironvault/config", baseErr)

	errStr := ferr.Error()
	if !strings.Contains(errStr, "open") {
		t.Errorf("Error string should contain operation: %q", errStr)
	}
	if !strings.Contains(errStr, "/home/user/.ironvault/config") {
		t.Errorf("Error string should contain path: %q", errStr)
	}
	if !strings.Contains(errStr, "permission denied") {
		t.Errorf("Error string should contain base error: %q", errStr)
	}

	if unwrapped := ferr.Unwrap(); unwrapped != baseErr {
		t.Errorf("Unwrap() returned %v, want %v", unwrapped, baseErr)
	}

	if ferr.Op != "open" {
		t.Errorf("Op = %q, want %q", ferr.Op, "open")
	}
	if ferr.Path != "/home/user/.ironvault/config" {
		t.Errorf("Path = %q, want %q", ferr.Path, "/home/user/.ironvault/config")
	}
}

// TestVaultStorageError tests the VaultStorageError type.
func TestVaultStorageError(t *testing.T) {
	baseErr := ErrDecryption
	serr := NewVaultStorageError("open-storage", baseErr)

	errStr := serr.Error()
	if !strings.Contains(errStr, "open-storage") {
		t.Errorf("Error string should contain op: %q", errStr)
	}

	if unwrapped := serr.Unwrap(); unwrapped != baseErr {
		t.Errorf("Unwrap() returned %v, want %v", unwrapped, baseErr)
	}
}

// TestVaultKeyError tests the VaultKeyError type.
func TestVaultKeyError(t *testing.T) {
	baseErr := ErrSaltLength
	kerr := NewVaultKeyError("derive", baseErr)

	if !strings.Contains(kerr.Error(), "derive") {
		t.Errorf("Error string should contain op: %q", kerr.Error())
	}
	if unwrapped := kerr.Unwrap(); unwrapped != baseErr {
		t.Errorf("Unwrap() returned %v, want %v", unwrapped, baseErr)
	}
}

// TestConfigurationFileError tests the ConfigurationFileError type.
func TestConfigurationFileError(t *testing.T) {
	baseErr := ErrSerialization
	cerr := NewConfigurationFileError("parse", baseErr)

	if !strings.Contains(cerr.Error(), "parse") {
		t.Errorf("Error string should contain op: %q", cerr.Error())
	}
	if unwrapped := cerr.Unwrap(); unwrapped != baseErr {
		t.Errorf("Unwrap() returned %v, want %v", unwrapped, baseErr)
	}
}

// TestIsFunction tests the Is helper function.
func TestIsFunction(t *testing.T) {
	err := ErrKeyLength
	if !Is(err, ErrKeyLength) {
		t.Error("Is() should return true for matching sentinel error")
	}

	wrapped := NewVaultStorageError("open-storage", ErrDecryption)
	if !Is(wrapped, ErrDecryption) {
		t.Error("Is() should return true for wrapped sentinel error")
	}

	if Is(err, ErrKey) {
		t.Error("Is() should return false for non-matching error")
	}
}

// TestAsFunction tests the As helper function.
func TestAsFunction(t *testing.T) {
	ferr := NewFileError("read", "/home/user/.ironvault/key", ErrKeyGeneration)

	var target *FileError
	if !As(ferr, &target) {
		t.Error("As() should return true for matching type")
	}
	if target.Op != "read" {
		t.Errorf("As() extracted Op = %q, want %q", target.Op, "read")
	}

	var storageErr *VaultStorageError
	if As(ferr, &storageErr) {
		t.Error("As() should return false for non-matching type")
	}
}

// TestSentinelErrors tests all sentinel error definitions.
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrKeyGeneration", ErrKeyGeneration},
		{"ErrSaltGeneration", ErrSaltGeneration},
		{"ErrSaltLength", ErrSaltLength},
		{"ErrKeyLength", ErrKeyLength},
		{"ErrKey", ErrKey},
		{"ErrNonceGeneration", ErrNonceGeneration},
		{"ErrDecryption", ErrDecryption},
		{"ErrEncryption", ErrEncryption},
		{"ErrCiphertextTooShort", ErrCiphertextTooShort},
		{"ErrString", ErrString},
		{"ErrSerialization", ErrSerialization},
		{"ErrVaultAlreadyExists", ErrVaultAlreadyExists},
		{"ErrVaultGeneration", ErrVaultGeneration},
		{"ErrVaultNotFound", ErrVaultNotFound},
		{"ErrRecordNotFound", ErrRecordNotFound},
		{"ErrUnknown", ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Errorf("%s is nil", tt.name)
			}
			if tt.err.Error() == "" {
				t.Errorf("%s.Error() returned empty string", tt.name)
			}
		})
	}
}

// TestErrorWrapping tests error wrapping with VaultStorageError, modeling a
// wrong-passphrase open failing AEAD authentication.
func TestErrorWrapping(t *testing.T) {
	baseErr := ErrDecryption
	wrapped := NewVaultStorageError("open-storage", baseErr)

	if !errors.Is(wrapped, baseErr) {
		t.Error("Wrapped error should match base error with errors.Is")
	}

	doubleWrapped := NewVaultKeyError("unwrap", wrapped)
	if !errors.Is(doubleWrapped, baseErr) {
		t.Error("Double-wrapped error should still match base error")
	}

	var storageErr *VaultStorageError
	if !errors.As(doubleWrapped, &storageErr) {
		t.Error("Should be able to extract VaultStorageError from double-wrapped")
	}
	if storageErr.Op != "open-storage" {
		t.Errorf("Extracted Op = %q, want %q", storageErr.Op, "open-storage")
	}
}

// TestConfigurationFileErrorWrapping mirrors a missing config file during
// vault open.
func TestConfigurationFileErrorWrapping(t *testing.T) {
	baseErr := NewFileError("open", "/home/user/.ironvault/config", ErrUnknown)
	wrapped := NewConfigurationFileError("read", baseErr)

	if !errors.Is(wrapped, ErrUnknown) {
		t.Error("Wrapped error should match base error with errors.Is")
	}

	var fileErr *FileError
	if !errors.As(wrapped, &fileErr) {
		t.Error("Should be able to extract FileError")
	}
	if fileErr.Path != "/home/user/.ironvault/config" {
		t.Errorf("Extracted Path = %q, want %q", fileErr.Path, "/home/user/.ironvault/config")
	}
}

// TestMixedErrorTypes tests mixing VaultStorageError and VaultKeyError.
func TestMixedErrorTypes(t *testing.T) {
	storageErr := NewVaultStorageError("open-storage", ErrDecryption)
	keyErr := NewVaultKeyError("unwrap", storageErr)

	var se *VaultStorageError
	if !errors.As(keyErr, &se) {
		t.Error("Should be able to extract VaultStorageError from VaultKeyError wrapper")
	}

	var ke *VaultKeyError
	if !errors.As(keyErr, &ke) {
		t.Error("Should be able to extract VaultKeyError")
	}

	if !errors.Is(keyErr, ErrDecryption) {
		t.Error("Should match base sentinel error through multiple wrappers")
	}
}

// TestErrorContextPreservation tests that error context is preserved
// through nested wraps.
func TestErrorContextPreservation(t *testing.T) {
	err := NewVaultStorageError("open-storage", ErrDecryption)
	wrapped := NewVaultKeyError("unwrap", err)

	errStr := wrapped.Error()
	if !strings.Contains(errStr, "unwrap") {
		t.Errorf("Error string missing key op: %q", errStr)
	}
	if !strings.Contains(errStr, "open-storage") {
		t.Errorf("Error string missing storage op: %q", errStr)
	}
	if !strings.Contains(errStr, "decryption failed") {
		t.Errorf("Error string missing base error: %q", errStr)
	}
}

// TestNilErrorHandling tests handling of nil errors.
func TestNilErrorHandling(t *testing.T) {
	if Is(nil, ErrKeyLength) {
		t.Error("Is(nil, target) should return false")
	}

	var target *FileError
	if As(nil, &target) {
		t.Error("As(nil, target) should return false")
	}
}
