// Package record defines the vault's credential entity: a UUID-identified,
// named, string-to-string metadata map tagged with a Kind.
package record

import "github.com/google/uuid"

// Kind tags the shape of a Record's entries. Only Login is defined; an
// unrecognized kind encountered on read is preserved as an opaque string
// rather than rejected, so a vault written by a version that adds a new
// kind still opens under this one.
type Kind string

// Login is the only defined Kind. Its conventional entries keys are
// "username" and "password", both optional.
const Login Kind = "Login"

// Record is a named credential identified by a UUIDv4. It is never mutated
// in place by Vault: updates replace the stored value by UUID.
type Record struct {
	UUID    string            `json:"uuid"`
	Name    string            `json:"name"`
	Kind    Kind              `json:"kind"`
	Entries map[string]string `json:"entries"`
}

// NewLogin constructs a Login record with a fresh UUIDv4 identity and the
// conventional username/password entries.
func NewLogin(name, username, password string) *Record {
	return &Record{
		UUID: uuid.NewString(),
		Name: name,
		Kind: Login,
		Entries: map[string]string{
			"username": username,
			"password": password,
		},
	}
}

// Username returns the "username" entry, or "" if absent.
func (r *Record) Username() string {
	return r.Entries["username"]
}

// Password returns the "password" entry, or "" if absent.
func (r *Record) Password() string {
	return r.Entries["password"]
}

// Metadata returns the entry at key, and whether it was present.
func (r *Record) Metadata(key string) (string, bool) {
	v, ok := r.Entries[key]
	return v, ok
}

// UpdateUsername sets the "username" entry and returns its previous value,
// if any.
func (r *Record) UpdateUsername(username string) (string, bool) {
	return r.UpdateMetadata("username", username)
}

// UpdatePassword sets the "password" entry and returns its previous value,
// if any.
func (r *Record) UpdatePassword(password string) (string, bool) {
	return r.UpdateMetadata("password", password)
}

// UpdateMetadata sets entries[key] = value and returns the entry's previous
// value, if any.
func (r *Record) UpdateMetadata(key, value string) (string, bool) {
	if r.Entries == nil {
		r.Entries = make(map[string]string)
	}
	prev, ok := r.Entries[key]
	r.Entries[key] = value
	return prev, ok
}
