// Package blob implements the vault's file-backed payload containers: an
// authenticated-encryption envelope (EncryptedBlob) and a raw passthrough
// (PlaintextBlob), both exposing the same read/write surface for bytes,
// UTF-8 strings, and JSON values.
package blob

// Blob is a file-backed container for a single opaque byte payload. Both
// EncryptedBlob and PlaintextBlob implement it; callers that only need to
// read or write a payload without caring whether it is sealed can program
// against this interface.
type Blob interface {
	// ReadBytes reads and returns the blob's plaintext payload.
	ReadBytes() ([]byte, error)

	// WriteBytes replaces the blob's payload with b.
	WriteBytes(b []byte) error

	// ReadString reads the payload and decodes it as UTF-8.
	ReadString() (string, error)

	// WriteString encodes s as UTF-8 and writes it as the payload.
	WriteString(s string) error

	// ReadObject reads the payload and unmarshals it as JSON into v.
	ReadObject(v interface{}) error

	// WriteObject marshals v as JSON and writes it as the payload.
	WriteObject(v interface{}) error
}
