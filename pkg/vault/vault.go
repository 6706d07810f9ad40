// Package vault implements the top-level Vault object: path resolution,
// the two-level key hierarchy, the three on-disk files, and the in-memory
// record collection with its mutation and query API.
package vault

import (
	"context"
	"os"
	"path/filepath"

	"github.com/apsislabs/iron-vault/internal/constants"
	qerrors "github.com/apsislabs/iron-vault/internal/errors"
	"github.com/apsislabs/iron-vault/internal/logging"
	"github.com/apsislabs/iron-vault/internal/tracing"
	"github.com/apsislabs/iron-vault/pkg/blob"
	qcrypto "github.com/apsislabs/iron-vault/pkg/crypto"
	"github.com/apsislabs/iron-vault/pkg/keyops"
	"github.com/apsislabs/iron-vault/pkg/record"
)

// Vault is the opened, in-memory view of a vault directory: its
// configuration, the unwrapped data-encryption key, the blob handle for the
// storage file, and the decrypted record collection. There is no explicit Close; resource
// release happens implicitly since Vault holds no open file descriptors
// between operations.
type Vault struct {
	path    string
	config  Configuration
	dataKey []byte
	storage *blob.EncryptedBlob
	records map[string]*record.Record
	log     *logging.Logger
}

// Option configures Create/Open.
type Option func(*options)

type options struct {
	logger *logging.Logger
}

// WithLogger attaches a logger to the vault operation. Defaults to a
// silent logger.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

func resolveOptions(opts []Option) *options {
	o := &options{logger: logging.NullLogger()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Create creates a new vault at the resolved directory (see
// DetermineVaultPath) and returns it opened, with an empty record
// collection. Passphrase bytes are never logged.
func Create(passphrase []byte, explicitPath string, opts ...Option) (v *Vault, err error) {
	o := resolveOptions(opts)
	ctx, end := tracing.StartSpan(context.Background(), tracing.SpanVaultCreate)
	defer func() { end(err) }()

	dir, perr := DetermineVaultPath(explicitPath)
	if perr != nil {
		return nil, qerrors.ErrUnknown
	}
	o.logger.Debug("resolved vault path", logging.Fields{"path": dir, "op": "create"})

	if _, statErr := os.Stat(dir); statErr == nil {
		return nil, qerrors.ErrVaultAlreadyExists
	} else if !os.IsNotExist(statErr) {
		return nil, qerrors.NewFileError("stat", dir, statErr)
	}

	if mkErr := os.MkdirAll(dir, 0o700); mkErr != nil {
		return nil, qerrors.ErrVaultGeneration
	}

	salt, err := keyops.GenerateSalt()
	if err != nil {
		return nil, qerrors.NewVaultKeyError("generate-salt", err)
	}
	cfg := Configuration{Salt: salt}
	configBlob := blob.NewPlaintextBlob(filepath.Join(dir, constants.ConfigFileName))
	if err := configBlob.WriteObject(cfg); err != nil {
		return nil, qerrors.NewConfigurationFileError("write", err)
	}

	_, deriveEnd := tracing.StartSpan(ctx, tracing.SpanKeyDerive)
	kek, err := keyops.DeriveKey(qcrypto.ChaCha20Poly1305, salt, passphrase)
	deriveEnd(err)
	if err != nil {
		return nil, qerrors.NewVaultKeyError("derive", err)
	}
	defer qcrypto.Zeroize(kek)

	dataKey, err := keyops.GenerateKey(qcrypto.ChaCha20Poly1305)
	if err != nil {
		return nil, qerrors.NewVaultKeyError("generate-key", err)
	}

	keyBlob := blob.NewEncryptedBlob(filepath.Join(dir, constants.KeyFileName), kek, qcrypto.ChaCha20Poly1305)
	if err := keyBlob.WriteBytes(dataKey); err != nil {
		qcrypto.Zeroize(dataKey)
		return nil, qerrors.NewVaultStorageError("write-key", err)
	}

	storageBlob := blob.NewEncryptedBlob(filepath.Join(dir, constants.StorageFileName), dataKey, qcrypto.ChaCha20Poly1305)
	records := make(map[string]*record.Record)
	if err := storageBlob.WriteObject(records); err != nil {
		return nil, qerrors.NewVaultStorageError("write-storage", err)
	}

	o.logger.Info("vault created", logging.Fields{"path": dir})

	return &Vault{
		path:    dir,
		config:  cfg,
		dataKey: dataKey,
		storage: storageBlob,
		records: records,
		log:     o.logger,
	}, nil
}

// Open opens an existing vault at the resolved directory and decrypts its
// record collection. A wrong passphrase or a tampered wrapped-key/storage
// file surfaces as a *errors.VaultStorageError wrapping ErrDecryption.
func Open(passphrase []byte, explicitPath string, opts ...Option) (v *Vault, err error) {
	o := resolveOptions(opts)
	ctx, end := tracing.StartSpan(context.Background(), tracing.SpanVaultOpen)
	defer func() { end(err) }()

	dir, err := DetermineVaultPath(explicitPath)
	if err != nil {
		return nil, qerrors.ErrUnknown
	}
	o.logger.Debug("resolved vault path", logging.Fields{"path": dir, "op": "open"})

	var cfg Configuration
	configBlob := blob.NewPlaintextBlob(filepath.Join(dir, constants.ConfigFileName))
	if err := configBlob.ReadObject(&cfg); err != nil {
		return nil, qerrors.NewConfigurationFileError("read", err)
	}

	_, deriveEnd := tracing.StartSpan(ctx, tracing.SpanKeyDerive)
	kek, err := keyops.DeriveKey(qcrypto.ChaCha20Poly1305, cfg.Salt, passphrase)
	deriveEnd(err)
	if err != nil {
		return nil, qerrors.NewVaultKeyError("derive", err)
	}
	defer qcrypto.Zeroize(kek)

	keyBlob := blob.NewEncryptedBlob(filepath.Join(dir, constants.KeyFileName), kek, qcrypto.ChaCha20Poly1305)
	dataKey, err := keyBlob.ReadBytes()
	if err != nil {
		o.logger.Warn("failed to unwrap data-encryption key", logging.Fields{"path": filepath.Join(dir, constants.KeyFileName)})
		return nil, qerrors.NewVaultStorageError("open-key", err)
	}

	storageBlob := blob.NewEncryptedBlob(filepath.Join(dir, constants.StorageFileName), dataKey, qcrypto.ChaCha20Poly1305)
	records := make(map[string]*record.Record)
	if err := storageBlob.ReadObject(&records); err != nil {
		o.logger.Warn("failed to open storage file", logging.Fields{"path": filepath.Join(dir, constants.StorageFileName)})
		return nil, qerrors.NewVaultStorageError("open-storage", err)
	}

	o.logger.Info("vault opened", logging.Fields{"path": dir, "records": len(records)})

	return &Vault{
		path:    dir,
		config:  cfg,
		dataKey: dataKey,
		storage: storageBlob,
		records: records,
		log:     o.logger,
	}, nil
}

// AddRecord inserts r into the in-memory collection, keyed by r.UUID
// (overwriting on collision), and rewrites the entire storage file.
func (v *Vault) AddRecord(r *record.Record) error {
	_, end := tracing.StartSpan(context.Background(), tracing.SpanVaultAdd)

	v.records[r.UUID] = r
	if err := v.storage.WriteObject(v.records); err != nil {
		end(err)
		return qerrors.NewVaultStorageError("write-storage", err)
	}

	end(nil)
	v.log.Info("record added", logging.Fields{"uuid": r.UUID, "name": r.Name})
	return nil
}

// FetchRecords returns a snapshot of every record in the vault, in no
// particular order.
func (v *Vault) FetchRecords() []*record.Record {
	out := make([]*record.Record, 0, len(v.records))
	for _, r := range v.records {
		out = append(out, r)
	}
	return out
}

// GetRecordsByName returns every record whose Name exactly matches name.
// Duplicates are allowed and all are returned.
func (v *Vault) GetRecordsByName(name string) []*record.Record {
	var out []*record.Record
	for _, r := range v.records {
		if r.Name == name {
			out = append(out, r)
		}
	}
	return out
}

// GetRecordByUUID returns the record with the given UUID, and whether it
// was found.
func (v *Vault) GetRecordByUUID(uuid string) (*record.Record, bool) {
	r, ok := v.records[uuid]
	return r, ok
}

// Path returns the vault's resolved directory.
func (v *Vault) Path() string {
	return v.path
}
