package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apsislabs/iron-vault/internal/constants"
	qerrors "github.com/apsislabs/iron-vault/internal/errors"
	"github.com/apsislabs/iron-vault/pkg/blob"
	"github.com/apsislabs/iron-vault/pkg/record"
)

func TestCreateAndOpenEmpty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "v1")

	if _, err := Create([]byte("pw1"), dir); err != nil {
		t.Fatalf("Create: %v", err)
	}

	v, err := Open([]byte("pw1"), dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(v.FetchRecords()) != 0 {
		t.Errorf("FetchRecords() len = %d, want 0", len(v.FetchRecords()))
	}
}

func TestAddAndRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "v1")

	if _, err := Create([]byte("pw1"), dir); err != nil {
		t.Fatalf("Create: %v", err)
	}

	v, err := Open([]byte("pw1"), dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	r := record.NewLogin("GitHub", "alice", "hunter2")
	if err := v.AddRecord(r); err != nil {
		t.Fatalf("AddRecord: %v", err)
	}

	reopened, err := Open([]byte("pw1"), dir)
	if err != nil {
		t.Fatalf("Open (reopen): %v", err)
	}
	records := reopened.FetchRecords()
	if len(records) != 1 {
		t.Fatalf("FetchRecords() len = %d, want 1", len(records))
	}
	if records[0].Name != "GitHub" {
		t.Errorf("Name = %q, want %q", records[0].Name, "GitHub")
	}
	if records[0].Username() != "alice" || records[0].Password() != "hunter2" {
		t.Errorf("entries = %v", records[0].Entries)
	}
}

func TestOpenWrongPassphrase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "v1")

	if _, err := Create([]byte("pw1"), dir); err != nil {
		t.Fatalf("Create: %v", err)
	}
	v, err := Open([]byte("pw1"), dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := v.AddRecord(record.NewLogin("GitHub", "alice", "hunter2")); err != nil {
		t.Fatalf("AddRecord: %v", err)
	}

	_, err = Open([]byte("pw2"), dir)
	if err == nil {
		t.Fatal("expected error opening with wrong passphrase")
	}
	var storageErr *qerrors.VaultStorageError
	if !qerrors.As(err, &storageErr) {
		t.Fatalf("expected *errors.VaultStorageError, got %T: %v", err, err)
	}
	if !qerrors.Is(err, qerrors.ErrDecryption) {
		t.Errorf("expected ErrDecryption in chain, got %v", err)
	}
}

func TestOpenTamperedStorage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "v1")

	if _, err := Create([]byte("pw1"), dir); err != nil {
		t.Fatalf("Create: %v", err)
	}
	v, err := Open([]byte("pw1"), dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := v.AddRecord(record.NewLogin("GitHub", "alice", "hunter2")); err != nil {
		t.Fatalf("AddRecord: %v", err)
	}

	storagePath := filepath.Join(dir, "storage")
	raw, err := os.ReadFile(storagePath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	raw[len(raw)-1] ^= 0xFF
	if err := os.WriteFile(storagePath, raw, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err = Open([]byte("pw1"), dir)
	if !qerrors.Is(err, qerrors.ErrDecryption) {
		t.Errorf("expected ErrDecryption, got %v", err)
	}
}

func TestCreateDuplicateFails(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "v1")

	if _, err := Create([]byte("pw1"), dir); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := Create([]byte("pw1"), dir)
	if !qerrors.Is(err, qerrors.ErrVaultAlreadyExists) {
		t.Errorf("expected ErrVaultAlreadyExists, got %v", err)
	}
}

func TestNameCollisionQueries(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "v1")

	if _, err := Create([]byte("pw1"), dir); err != nil {
		t.Fatalf("Create: %v", err)
	}
	v, err := Open([]byte("pw1"), dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	r1 := record.NewLogin("Email", "alice@example.com", "p1")
	r2 := record.NewLogin("Email", "alice.work@example.com", "p2")
	if err := v.AddRecord(r1); err != nil {
		t.Fatalf("AddRecord: %v", err)
	}
	if err := v.AddRecord(r2); err != nil {
		t.Fatalf("AddRecord: %v", err)
	}

	matches := v.GetRecordsByName("Email")
	if len(matches) != 2 {
		t.Fatalf("GetRecordsByName len = %d, want 2", len(matches))
	}

	got1, ok := v.GetRecordByUUID(r1.UUID)
	if !ok || got1.Username() != "alice@example.com" {
		t.Errorf("GetRecordByUUID(r1) = %v, %v", got1, ok)
	}
	got2, ok := v.GetRecordByUUID(r2.UUID)
	if !ok || got2.Username() != "alice.work@example.com" {
		t.Errorf("GetRecordByUUID(r2) = %v, %v", got2, ok)
	}
}

func TestAddRecordOverwritesOnUUIDCollision(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "v1")

	if _, err := Create([]byte("pw1"), dir); err != nil {
		t.Fatalf("Create: %v", err)
	}
	v, err := Open([]byte("pw1"), dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	r := record.NewLogin("GitHub", "alice", "hunter2")
	if err := v.AddRecord(r); err != nil {
		t.Fatalf("AddRecord: %v", err)
	}

	updated := &record.Record{UUID: r.UUID, Name: "GitHub", Kind: record.Login, Entries: map[string]string{
		"username": "alice",
		"password": "hunter3",
	}}
	if err := v.AddRecord(updated); err != nil {
		t.Fatalf("AddRecord (update): %v", err)
	}

	if len(v.FetchRecords()) != 1 {
		t.Fatalf("FetchRecords len = %d, want 1 after overwrite", len(v.FetchRecords()))
	}
	got, ok := v.GetRecordByUUID(r.UUID)
	if !ok || got.Password() != "hunter3" {
		t.Errorf("expected overwritten password, got %v", got)
	}
}

func TestOpenRejectsShortSalt(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "v1")

	if _, err := Create([]byte("pw1"), dir); err != nil {
		t.Fatalf("Create: %v", err)
	}

	configPath := filepath.Join(dir, constants.ConfigFileName)
	configBlob := blob.NewPlaintextBlob(configPath)
	if err := configBlob.WriteObject(Configuration{Salt: []byte{1, 2, 3}}); err != nil {
		t.Fatalf("WriteObject: %v", err)
	}

	_, err := Open([]byte("pw1"), dir)
	if err == nil {
		t.Fatal("expected error opening a vault with a too-short salt")
	}
	var keyErr *qerrors.VaultKeyError
	if !qerrors.As(err, &keyErr) {
		t.Fatalf("expected *errors.VaultKeyError, got %T: %v", err, err)
	}
	if !qerrors.Is(err, qerrors.ErrSaltLength) {
		t.Errorf("expected ErrSaltLength leaf error in chain, got %v", err)
	}
}

func TestOpenMissingVault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := Open([]byte("pw1"), dir)
	if err == nil {
		t.Fatal("expected error opening a non-existent vault")
	}
	var cfgErr *qerrors.ConfigurationFileError
	if !qerrors.As(err, &cfgErr) {
		t.Errorf("expected *errors.ConfigurationFileError, got %T: %v", err, err)
	}
}
