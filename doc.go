// Package ironvault is a local, password-protected secrets vault: a
// single-user store of named credential records persisted to the
// filesystem as encrypted blobs.
//
// A human supplies a master passphrase; the vault derives a
// key-encryption key, unlocks an internal data-encryption key, decrypts
// the record collection, and allows queries and insertions, re-sealing
// the collection on change.
//
// # Quick Start
//
//	import (
//		"github.com/apsislabs/iron-vault/pkg/record"
//		"github.com/apsislabs/iron-vault/pkg/vault"
//	)
//
//	v, err := vault.Create([]byte("correct horse battery staple"), "")
//	if err != nil {
//		// handle err
//	}
//	v.AddRecord(record.NewLogin("GitHub", "alice", "hunter2"))
//
//	v2, err := vault.Open([]byte("correct horse battery staple"), "")
//	records := v2.FetchRecords()
//
// # Package Structure
//
// The library is organized into several packages:
//
//   - pkg/vault: the top-level Vault object, path resolution, and the
//     three-file on-disk lifecycle
//   - pkg/record: the Record entity and its accessors/mutators
//   - pkg/blob: the Blob interface and its EncryptedBlob/PlaintextBlob
//     implementations
//   - pkg/keyops: key/salt generation and passphrase-based key derivation
//   - pkg/crypto: low-level primitives (secure randomness, zeroization,
//     the fixed CHACHA20-POLY1305 algorithm descriptor)
//   - internal/constants: byte-length, iteration-policy, and path constants
//   - internal/errors: the flat vault error taxonomy
//   - internal/logging: structured logging for vault operations
//   - internal/tracing: optional OpenTelemetry spans, gated behind the
//     "otel" build tag
//
// # Security Properties
//
//   - Two-level key hierarchy: passphrase -> PBKDF2-derived key-encryption
//     key -> random data-encryption key, so the passphrase never directly
//     encrypts the records file
//   - Authenticated encryption: CHACHA20-POLY1305 (RFC 8439) with a fresh
//     random nonce on every write
//   - Per-passphrase PBKDF2 iteration extension to complicate shared-state
//     GPU attacks across passphrase guesses
//
// # Testing
//
//	go test ./...                               # all tests
//	go test -fuzz=FuzzEncryptedBlobRoundTrip ./test/fuzz/
//	go test -bench=. ./test/benchmark
package ironvault
