package blob

import (
	"encoding/json"
	"os"
	"unicode/utf8"

	qerrors "github.com/apsislabs/iron-vault/internal/errors"
)

// PlaintextBlob is a file-backed container with the same interface as
// EncryptedBlob but no envelope: bytes transfer to and from disk as-is.
// Used exclusively for the configuration file, which must be readable
// before any key material exists to decrypt anything.
type PlaintextBlob struct {
	path string
}

// NewPlaintextBlob returns a blob backed by path.
func NewPlaintextBlob(path string) *PlaintextBlob {
	return &PlaintextBlob{path: path}
}

// ReadBytes reads the file's entire contents.
func (b *PlaintextBlob) ReadBytes() ([]byte, error) {
	raw, err := os.ReadFile(b.path)
	if err != nil {
		return nil, qerrors.NewFileError("open", b.path, err)
	}
	return raw, nil
}

// WriteBytes truncate-writes raw to the file.
func (b *PlaintextBlob) WriteBytes(raw []byte) error {
	if err := os.WriteFile(b.path, raw, 0o600); err != nil {
		return qerrors.NewFileError("write", b.path, err)
	}
	return nil
}

// ReadString reads and UTF-8-decodes the file's contents.
func (b *PlaintextBlob) ReadString() (string, error) {
	raw, err := b.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", qerrors.ErrString
	}
	return string(raw), nil
}

// WriteString UTF-8-encodes s and writes it to the file.
func (b *PlaintextBlob) WriteString(s string) error {
	return b.WriteBytes([]byte(s))
}

// ReadObject reads the file and unmarshals it as JSON into v.
func (b *PlaintextBlob) ReadObject(v interface{}) error {
	raw, err := b.ReadBytes()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return qerrors.ErrSerialization
	}
	return nil
}

// WriteObject marshals v as JSON and writes it to the file.
func (b *PlaintextBlob) WriteObject(v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return qerrors.ErrSerialization
	}
	return b.WriteBytes(raw)
}

var _ Blob = (*PlaintextBlob)(nil)
