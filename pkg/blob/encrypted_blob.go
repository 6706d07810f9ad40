package blob

import (
	"encoding/json"
	"os"
	"unicode/utf8"

	"golang.org/x/crypto/chacha20poly1305"

	qerrors "github.com/apsislabs/iron-vault/internal/errors"
	qcrypto "github.com/apsislabs/iron-vault/pkg/crypto"
)

// EncryptedBlob is a file-backed, authenticated-encryption container. The
// on-disk layout is nonce[12] || ciphertext[N] || tag[16]; associated data
// is always empty. A fresh random nonce is generated on every write, so two
// writes of identical plaintext under the same key never produce identical
// ciphertext.
type EncryptedBlob struct {
	path      string
	key       []byte
	algorithm qcrypto.Algorithm
}

// NewEncryptedBlob returns a blob backed by path, sealed under key using
// algorithm. key must be exactly algorithm.KeySize bytes.
func NewEncryptedBlob(path string, key []byte, algorithm qcrypto.Algorithm) *EncryptedBlob {
	return &EncryptedBlob{path: path, key: key, algorithm: algorithm}
}

// ReadBytes reads the file, verifies the key length, and opens the AEAD
// envelope, returning the plaintext.
func (b *EncryptedBlob) ReadBytes() ([]byte, error) {
	if len(b.key) != b.algorithm.KeySize {
		return nil, qerrors.ErrKeyLength
	}

	raw, err := os.ReadFile(b.path)
	if err != nil {
		return nil, qerrors.NewFileError("open", b.path, err)
	}

	if len(raw) < b.algorithm.Overhead() {
		return nil, qerrors.ErrCiphertextTooShort
	}

	aead, err := chacha20poly1305.New(b.key)
	if err != nil {
		return nil, qerrors.ErrKey
	}

	nonce := raw[:b.algorithm.NonceSize]
	sealed := raw[b.algorithm.NonceSize:]

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, qerrors.ErrDecryption
	}
	return plaintext, nil
}

// WriteBytes generates a fresh random nonce, seals plaintext under the
// blob's key, and truncate-writes nonce||ciphertext||tag to the file.
func (b *EncryptedBlob) WriteBytes(plaintext []byte) error {
	if len(b.key) != b.algorithm.KeySize {
		return qerrors.ErrKeyLength
	}

	aead, err := chacha20poly1305.New(b.key)
	if err != nil {
		return qerrors.ErrKey
	}

	nonce, err := qcrypto.SecureRandomBytes(b.algorithm.NonceSize)
	if err != nil {
		return qerrors.ErrNonceGeneration
	}

	sealed := aead.Seal(nil, nonce, plaintext, nil)

	out := make([]byte, 0, len(nonce)+len(sealed))
	out = append(out, nonce...)
	out = append(out, sealed...)

	if err := os.WriteFile(b.path, out, 0o600); err != nil {
		return qerrors.NewFileError("write", b.path, err)
	}
	return nil
}

// ReadString reads and UTF-8-decodes the blob's payload.
func (b *EncryptedBlob) ReadString() (string, error) {
	raw, err := b.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", qerrors.ErrString
	}
	return string(raw), nil
}

// WriteString UTF-8-encodes s and writes it as the blob's payload.
func (b *EncryptedBlob) WriteString(s string) error {
	return b.WriteBytes([]byte(s))
}

// ReadObject reads the blob's payload and unmarshals it as JSON into v.
func (b *EncryptedBlob) ReadObject(v interface{}) error {
	raw, err := b.ReadBytes()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return qerrors.ErrSerialization
	}
	return nil
}

// WriteObject marshals v as JSON and writes it as the blob's payload.
func (b *EncryptedBlob) WriteObject(v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return qerrors.ErrSerialization
	}
	return b.WriteBytes(raw)
}

var _ Blob = (*EncryptedBlob)(nil)
