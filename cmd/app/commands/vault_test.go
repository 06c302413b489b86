package commands

import (
	"bytes"
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoService "github.com/allisson/legacyvault/internal/crypto/service"
	vaultDomain "github.com/allisson/legacyvault/internal/offlinevault/domain"
	"github.com/allisson/legacyvault/internal/offlinevault/keystore"
	vaultRepository "github.com/allisson/legacyvault/internal/offlinevault/repository"
	vaultUseCase "github.com/allisson/legacyvault/internal/offlinevault/usecase"
	vaultMocks "github.com/allisson/legacyvault/internal/offlinevault/usecase/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newDeviceKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, vaultDomain.VaultKeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

type vaultFixture struct {
	vault    *vaultMocks.MockVault
	keyStore *vaultMocks.MockDeviceKeyStore
	out      *bytes.Buffer
	key      []byte
}

func (f *vaultFixture) deps() VaultDeps {
	return VaultDeps{Vault: f.vault, KeyStore: f.keyStore, Logger: newTestLogger(), Writer: f.out}
}

// newVaultFixture expects the vault to be opened with the device key and closed.
func newVaultFixture(t *testing.T) *vaultFixture {
	t.Helper()

	f := &vaultFixture{
		vault:    vaultMocks.NewMockVault(t),
		keyStore: vaultMocks.NewMockDeviceKeyStore(t),
		out:      &bytes.Buffer{},
		key:      newDeviceKey(t),
	}
	f.keyStore.EXPECT().LoadOrCreate(mock.Anything).Return(f.key, nil).Once()
	f.vault.EXPECT().Open(mock.Anything, mock.Anything).Return(nil).Once()
	f.vault.EXPECT().Close().Return(nil).Once()
	return f
}

func TestOpenVault(t *testing.T) {
	ctx := context.Background()

	t.Run("zeroes-device-key", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().GetStats(mock.Anything).Return(vaultDomain.Stats{}, nil).Once()

		require.NoError(t, RunVaultStats(ctx, f.deps(), "text"))
		assert.Equal(t, make([]byte, vaultDomain.VaultKeySize), f.key)
	})

	t.Run("key-store-error", func(t *testing.T) {
		vault := vaultMocks.NewMockVault(t)
		keyStore := vaultMocks.NewMockDeviceKeyStore(t)
		keyStore.EXPECT().LoadOrCreate(mock.Anything).Return(nil, vaultDomain.ErrDeviceKeyUnavailable).Once()

		err := RunVaultStats(ctx, VaultDeps{Vault: vault, KeyStore: keyStore, Logger: newTestLogger(), Writer: io.Discard}, "text")
		require.Error(t, err)
		assert.ErrorIs(t, err, vaultDomain.ErrDeviceKeyUnavailable)
	})

	t.Run("open-error", func(t *testing.T) {
		vault := vaultMocks.NewMockVault(t)
		keyStore := vaultMocks.NewMockDeviceKeyStore(t)
		key := newDeviceKey(t)
		keyStore.EXPECT().LoadOrCreate(mock.Anything).Return(key, nil).Once()
		vault.EXPECT().Open(mock.Anything, mock.Anything).Return(vaultDomain.ErrVaultOpen).Once()

		err := RunVaultList(ctx, VaultDeps{Vault: vault, KeyStore: keyStore, Logger: newTestLogger(), Writer: io.Discard}, "text")
		assert.ErrorIs(t, err, vaultDomain.ErrVaultOpen)
		assert.Equal(t, make([]byte, vaultDomain.VaultKeySize), key)
	})

	t.Run("invalid-format", func(t *testing.T) {
		vault := vaultMocks.NewMockVault(t)
		keyStore := vaultMocks.NewMockDeviceKeyStore(t)

		err := RunVaultStats(ctx, VaultDeps{Vault: vault, KeyStore: keyStore, Logger: newTestLogger(), Writer: io.Discard}, "yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})
}

func TestRunVaultAdd(t *testing.T) {
	ctx := context.Background()
	filePath := filepath.Join(t.TempDir(), "will.pdf")
	require.NoError(t, os.WriteFile(filePath, []byte("last will"), 0o600))

	t.Run("text-output", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().AddDocument(mock.Anything, mock.MatchedBy(func(doc *vaultDomain.Document) bool {
			return doc.ID == "doc-1" &&
				doc.FileName == "will.pdf" &&
				doc.DocumentType == "legal" &&
				string(doc.Content) == "last will" &&
				assert.ObjectsAreEqual([]string{"family", "legal"}, doc.Tags)
		})).RunAndReturn(func(ctx context.Context, doc *vaultDomain.Document) error {
			doc.FileSize = int64(len(doc.Content))
			return nil
		}).Once()

		err := RunVaultAdd(ctx, f.deps(), filePath, "doc-1", "legal", []string{" family ", "", "legal"}, "text")
		require.NoError(t, err)
		assert.Equal(t, "Added document doc-1 (will.pdf, 9 bytes)\n", f.out.String())
	})

	t.Run("json-output", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().AddDocument(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, doc *vaultDomain.Document) error {
				doc.ID = "generated"
				doc.FileSize = 9
				return nil
			}).Once()

		require.NoError(t, RunVaultAdd(ctx, f.deps(), filePath, "", "", nil, "json"))
		assert.Contains(t, f.out.String(), `"id": "generated"`)
		assert.Contains(t, f.out.String(), `"tags": []`)
		assert.NotContains(t, f.out.String(), "last will")
	})

	t.Run("missing-file", func(t *testing.T) {
		vault := vaultMocks.NewMockVault(t)
		keyStore := vaultMocks.NewMockDeviceKeyStore(t)

		err := RunVaultAdd(ctx, VaultDeps{Vault: vault, KeyStore: keyStore, Logger: newTestLogger(), Writer: io.Discard},
			filepath.Join(t.TempDir(), "missing"), "", "", nil, "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read")
	})

	t.Run("from-stdin", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().AddDocument(mock.Anything, mock.MatchedBy(func(doc *vaultDomain.Document) bool {
			return doc.FileName == "stdin" && string(doc.Content) == "piped note"
		})).Return(nil).Once()

		deps := f.deps()
		deps.Reader = strings.NewReader("piped note")
		require.NoError(t, RunVaultAdd(ctx, deps, "-", "note", "", nil, "text"))
		assert.Contains(t, f.out.String(), "Added document note (stdin")
	})

	t.Run("add-error", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().AddDocument(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		err := RunVaultAdd(ctx, f.deps(), filePath, "doc-1", "", nil, "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to add document")
	})
}

func TestRunVaultGet(t *testing.T) {
	ctx := context.Background()
	uploaded := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	newDoc := func() *vaultDomain.Document {
		return &vaultDomain.Document{
			ID:             "doc-1",
			FileName:       "will.pdf",
			Content:        []byte("last will"),
			FileSize:       9,
			UploadedAt:     uploaded,
			LastAccessedAt: uploaded.Add(time.Hour),
		}
	}

	t.Run("raw-content-to-writer", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().GetDocument(mock.Anything, "doc-1").Return(newDoc(), nil).Once()

		require.NoError(t, RunVaultGet(ctx, f.deps(), "doc-1", "", "text"))
		assert.Equal(t, "last will", f.out.String())
	})

	t.Run("json-embeds-base64-content", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().GetDocument(mock.Anything, "doc-1").Return(newDoc(), nil).Once()

		require.NoError(t, RunVaultGet(ctx, f.deps(), "doc-1", "", "json"))
		assert.Contains(t, f.out.String(), `"content": "`+base64.StdEncoding.EncodeToString([]byte("last will"))+`"`)
		assert.Contains(t, f.out.String(), `"uploaded_at": "2026-01-01T00:00:00Z"`)
	})

	t.Run("output-file", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().GetDocument(mock.Anything, "doc-1").Return(newDoc(), nil).Once()
		outputPath := filepath.Join(t.TempDir(), "restored.pdf")

		require.NoError(t, RunVaultGet(ctx, f.deps(), "doc-1", outputPath, "text"))

		content, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		assert.Equal(t, []byte("last will"), content)
		info, err := os.Stat(outputPath)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
		assert.Contains(t, f.out.String(), "Wrote document doc-1")
	})

	t.Run("not-found", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().GetDocument(mock.Anything, "missing").Return(nil, vaultDomain.ErrDocumentNotFound).Once()

		err := RunVaultGet(ctx, f.deps(), "missing", "", "text")
		assert.ErrorIs(t, err, vaultDomain.ErrDocumentNotFound)
	})
}

func TestRunVaultList(t *testing.T) {
	ctx := context.Background()

	t.Run("text-output", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().GetDocuments(mock.Anything).Return([]*vaultDomain.Document{
			{ID: "a", FileName: "a.txt", DocumentType: "note", FileSize: 100, Content: []byte("secret-a")},
			{ID: "b", FileName: "b.txt", FileSize: 250, Tags: []string{"x", "y"}, Content: []byte("secret-b")},
		}, nil).Once()

		require.NoError(t, RunVaultList(ctx, f.deps(), "text"))
		out := f.out.String()
		assert.Contains(t, out, "ID")
		assert.Contains(t, out, "a.txt")
		assert.Contains(t, out, "x,y")
		assert.NotContains(t, out, "secret-a")
	})

	t.Run("json-output", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().GetDocuments(mock.Anything).Return([]*vaultDomain.Document{
			{ID: "a", FileName: "a.txt", FileSize: 100, Content: []byte("secret-a")},
		}, nil).Once()

		require.NoError(t, RunVaultList(ctx, f.deps(), "json"))
		assert.Contains(t, f.out.String(), `"id": "a"`)
		assert.NotContains(t, f.out.String(), `"content"`)
	})

	t.Run("empty", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().GetDocuments(mock.Anything).Return([]*vaultDomain.Document{}, nil).Once()

		require.NoError(t, RunVaultList(ctx, f.deps(), "text"))
		assert.Equal(t, "No documents in the offline vault\n", f.out.String())
	})
}

func TestRunVaultRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("removed", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().RemoveDocument(mock.Anything, "doc-1").Return(true, nil).Once()

		require.NoError(t, RunVaultRemove(ctx, f.deps(), "doc-1", "text"))
		assert.Equal(t, "Removed document doc-1\n", f.out.String())
	})

	t.Run("missing", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().RemoveDocument(mock.Anything, "doc-1").Return(false, nil).Once()

		require.NoError(t, RunVaultRemove(ctx, f.deps(), "doc-1", "json"))
		assert.Contains(t, f.out.String(), `"removed": false`)
	})
}

func TestRunVaultClear(t *testing.T) {
	ctx := context.Background()

	t.Run("requires-confirmation", func(t *testing.T) {
		vault := vaultMocks.NewMockVault(t)
		keyStore := vaultMocks.NewMockDeviceKeyStore(t)

		err := RunVaultClear(ctx, VaultDeps{Vault: vault, KeyStore: keyStore, Logger: newTestLogger(), Writer: io.Discard}, false, "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--yes")
	})

	t.Run("cleared", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().ClearAll(mock.Anything).Return(nil).Once()

		require.NoError(t, RunVaultClear(ctx, f.deps(), true, "text"))
		assert.Equal(t, "Offline vault cleared\n", f.out.String())
	})
}

func TestRunVaultStats(t *testing.T) {
	ctx := context.Background()

	t.Run("text-output", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().GetStats(mock.Anything).Return(vaultDomain.Stats{DocumentCount: 2, TotalSize: 350}, nil).Once()

		require.NoError(t, RunVaultStats(ctx, f.deps(), "text"))
		assert.Equal(t, "Documents: 2\nTotal size: 350 bytes\n", f.out.String())
	})

	t.Run("json-output", func(t *testing.T) {
		f := newVaultFixture(t)
		f.vault.EXPECT().GetStats(mock.Anything).Return(vaultDomain.Stats{DocumentCount: 2, TotalSize: 350}, nil).Once()

		require.NoError(t, RunVaultStats(ctx, f.deps(), "json"))
		assert.JSONEq(t, `{"document_count":2,"total_size":350}`, f.out.String())
	})
}

// TestVaultCommands_EndToEnd drives the commands against a real vault file and key store.
func TestVaultCommands_EndToEnd(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	keeperKey := make([]byte, 32)
	_, err := rand.Read(keeperKey)
	require.NoError(t, err)
	keeper, err := cryptoService.NewKMSService().
		OpenKeeper(ctx, "base64key://"+base64.URLEncoding.EncodeToString(keeperKey))
	require.NoError(t, err)
	t.Cleanup(func() { _ = keeper.Close() })

	vault := vaultUseCase.NewVault(
		vaultUseCase.Config{Path: filepath.Join(dir, "vault.db"), OpenTimeout: time.Second},
		cryptoService.NewAEADManager(),
		func(db *sql.DB) vaultUseCase.DocumentRepository { return vaultRepository.NewSQLiteDocumentRepository(db) },
		newTestLogger(),
	)
	out := &bytes.Buffer{}
	deps := VaultDeps{
		Vault:    vault,
		KeyStore: keystore.NewFileKeyStore(filepath.Join(dir, "vault.key"), keeper),
		Logger:   newTestLogger(),
		Writer:   out,
	}

	filePath := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(filePath, make([]byte, 100), 0o600))
	require.NoError(t, RunVaultAdd(ctx, deps, filePath, "a", "note", nil, "text"))
	assert.False(t, vault.IsOpen())

	require.NoError(t, os.WriteFile(filePath, []byte("second"), 0o600))
	require.NoError(t, RunVaultAdd(ctx, deps, filePath, "b", "note", nil, "text"))

	out.Reset()
	require.NoError(t, RunVaultGet(ctx, deps, "b", "", "text"))
	assert.Equal(t, "second", out.String())

	out.Reset()
	require.NoError(t, RunVaultStats(ctx, deps, "json"))
	assert.JSONEq(t, `{"document_count":2,"total_size":106}`, out.String())

	require.NoError(t, RunVaultRemove(ctx, deps, "a", "text"))
	require.NoError(t, RunVaultClear(ctx, deps, true, "text"))

	out.Reset()
	require.NoError(t, RunVaultList(ctx, deps, "text"))
	assert.Equal(t, "No documents in the offline vault\n", out.String())
}
