package usecase

import (
	"bytes"
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/hkdf"

	cryptoDomain "github.com/allisson/legacyvault/internal/crypto/domain"
	cryptoService "github.com/allisson/legacyvault/internal/crypto/service"
	"github.com/allisson/legacyvault/internal/database"
	apperrors "github.com/allisson/legacyvault/internal/errors"
	vaultDomain "github.com/allisson/legacyvault/internal/offlinevault/domain"
)

const (
	vaultAlgorithm = cryptoDomain.AESGCM
	lockRetryDelay = 25 * time.Millisecond

	keyCheckName  = "key_check"
	keyCheckValue = "legacyvault/offline-vault/v1"

	storageKeyInfo = "legacyvault/offline-vault/storage"
	contentKeyInfo = "legacyvault/offline-vault/content"
)

// Config configures a Vault.
type Config struct {
	// Path is the SQLite file. A sibling Path+".lock" file serializes processes.
	Path string
	// OpenTimeout bounds how long Open waits for another process to release the file.
	OpenTimeout time.Duration
}

// RepositoryFactory builds the repository for a freshly opened database.
type RepositoryFactory func(db *sql.DB) DocumentRepository

// sealedRecord is the plaintext of SealedDocument.Record.
type sealedRecord struct {
	FileName         string    `json:"file_name"`
	DocumentType     string    `json:"document_type"`
	UploadedAt       time.Time `json:"uploaded_at"`
	LastAccessedAt   time.Time `json:"last_accessed_at"`
	Tags             []string  `json:"tags,omitempty"`
	EncryptedContent []byte    `json:"encrypted_content"`
	ContentNonce     []byte    `json:"content_nonce"`
}

type vault struct {
	mu            sync.RWMutex
	cfg           Config
	aeadManager   cryptoService.AEADManager
	newRepository RepositoryFactory
	logger        *slog.Logger
	now           func() time.Time

	db         *sql.DB
	fileLock   *flock.Flock
	txManager  database.TxManager
	repo       DocumentRepository
	rawKey     []byte
	storageKey []byte
	contentKey []byte
	storage    cryptoService.AEAD
	content    cryptoService.AEAD
}

// NewVault creates a closed Vault.
func NewVault(
	cfg Config,
	aeadManager cryptoService.AEADManager,
	newRepository RepositoryFactory,
	logger *slog.Logger,
) Vault {
	return &vault{
		cfg:           cfg,
		aeadManager:   aeadManager,
		newRepository: newRepository,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Open opens the vault. A wrong key leaves it closed with every handle released.
func (v *vault) Open(ctx context.Context, key []byte) error {
	if len(key) != vaultDomain.VaultKeySize {
		return vaultDomain.ErrInvalidVaultKey
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.db != nil {
		if subtle.ConstantTimeCompare(v.rawKey, key) == 1 {
			return nil
		}
		return vaultDomain.ErrVaultAlreadyOpen
	}

	if err := v.open(ctx, key); err != nil {
		v.release()
		return err
	}

	v.logger.Info("offline vault opened", slog.String("path", v.cfg.Path))
	return nil
}

func (v *vault) open(ctx context.Context, key []byte) error {
	lockCtx, cancel := context.WithTimeout(ctx, v.cfg.OpenTimeout)
	defer cancel()

	v.fileLock = flock.New(v.cfg.Path + ".lock")
	locked, err := v.fileLock.TryLockContext(lockCtx, lockRetryDelay)
	if !locked {
		if err != nil && lockCtx.Err() == nil {
			return apperrors.Wrapf(vaultDomain.ErrVaultOpen, "failed to lock vault file: %v", err)
		}
		return apperrors.Wrap(vaultDomain.ErrVaultOpen, "vault file is locked by another process")
	}

	db, err := database.Connect(ctx, database.Config{
		Driver:             "sqlite3",
		ConnectionString:   v.cfg.Path,
		MaxOpenConnections: 1,
		MaxIdleConnections: 1,
	})
	if err != nil {
		return apperrors.Wrapf(vaultDomain.ErrVaultOpen, "%v", err)
	}
	v.db = db
	v.txManager = database.NewTxManager(db)
	v.repo = v.newRepository(db)

	if v.storageKey, err = deriveSubkey(key[:32], storageKeyInfo); err != nil {
		return apperrors.Wrapf(vaultDomain.ErrVaultOpen, "failed to derive storage key: %v", err)
	}
	if v.contentKey, err = deriveSubkey(key[32:], contentKeyInfo); err != nil {
		return apperrors.Wrapf(vaultDomain.ErrVaultOpen, "failed to derive content key: %v", err)
	}
	if v.storage, err = v.aeadManager.CreateCipher(v.storageKey, vaultAlgorithm); err != nil {
		return apperrors.Wrapf(vaultDomain.ErrVaultOpen, "%v", err)
	}
	if v.content, err = v.aeadManager.CreateCipher(v.contentKey, vaultAlgorithm); err != nil {
		return apperrors.Wrapf(vaultDomain.ErrVaultOpen, "%v", err)
	}

	err = v.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := v.repo.EnsureSchema(ctx); err != nil {
			return err
		}
		return v.verifyKeyCheck(ctx)
	})
	if err != nil {
		if apperrors.Is(err, vaultDomain.ErrVaultOpen) {
			return err
		}
		return apperrors.Wrapf(vaultDomain.ErrVaultOpen, "%v", err)
	}

	v.rawKey = bytes.Clone(key)
	return nil
}

// verifyKeyCheck seals a known value on first open and checks it on every later open.
func (v *vault) verifyKeyCheck(ctx context.Context) error {
	aad := []byte("vault_meta/" + keyCheckName)

	value, nonce, ok, err := v.repo.GetMeta(ctx, keyCheckName)
	if err != nil {
		return err
	}

	if !ok {
		ciphertext, nonce, err := v.storage.Encrypt([]byte(keyCheckValue), aad)
		if err != nil {
			return err
		}
		return v.repo.PutMeta(ctx, keyCheckName, ciphertext, nonce)
	}

	plaintext, err := v.storage.Decrypt(value, nonce, aad)
	if err != nil || string(plaintext) != keyCheckValue {
		v.logger.Warn("offline vault key check failed", slog.String("path", v.cfg.Path))
		return apperrors.Wrap(vaultDomain.ErrVaultOpen, "wrong key or corrupted vault")
	}

	return nil
}

// release closes every handle and zeroes key material. Callers hold v.mu.
func (v *vault) release() {
	var err error
	if v.db != nil {
		err = v.db.Close()
	}
	if v.fileLock != nil {
		if unlockErr := v.fileLock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	if err != nil {
		v.logger.Warn("failed to release offline vault", slog.Any("error", err))
	}

	cryptoDomain.Zero(v.rawKey)
	cryptoDomain.Zero(v.storageKey)
	cryptoDomain.Zero(v.contentKey)

	v.db = nil
	v.fileLock = nil
	v.txManager = nil
	v.repo = nil
	v.rawKey = nil
	v.storageKey = nil
	v.contentKey = nil
	v.storage = nil
	v.content = nil
}

// Close closes the vault and zeroes its keys. Closing a closed vault is a no-op.
func (v *vault) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.db == nil {
		return nil
	}

	v.release()
	v.logger.Info("offline vault closed", slog.String("path", v.cfg.Path))
	return nil
}

// IsOpen reports whether the vault is open.
func (v *vault) IsOpen() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.db != nil
}

// AddDocument seals and upserts doc. A missing id gets a UUIDv7, a zero UploadedAt
// becomes now and a zero FileSize becomes len(Content).
func (v *vault) AddDocument(ctx context.Context, doc *vaultDomain.Document) error {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.db == nil {
		return vaultDomain.ErrVaultNotOpen
	}

	if doc.ID == "" {
		doc.ID = uuid.Must(uuid.NewV7()).String()
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = v.now()
	}
	if doc.FileSize == 0 {
		doc.FileSize = int64(len(doc.Content))
	}

	encryptedContent, contentNonce, err := v.content.Encrypt(doc.Content, contentAAD(doc.ID))
	if err != nil {
		return apperrors.Wrap(err, "failed to encrypt document content")
	}

	sealed, err := v.sealRecord(doc.ID, sealedRecord{
		FileName:         doc.FileName,
		DocumentType:     doc.DocumentType,
		UploadedAt:       doc.UploadedAt,
		LastAccessedAt:   doc.LastAccessedAt,
		Tags:             doc.Tags,
		EncryptedContent: encryptedContent,
		ContentNonce:     contentNonce,
	}, doc.FileSize)
	if err != nil {
		return err
	}

	return v.txManager.WithTx(ctx, func(ctx context.Context) error {
		return v.repo.Upsert(ctx, sealed)
	})
}

// GetDocuments decrypts every document. A single failure fails the whole call and
// no access time is updated.
func (v *vault) GetDocuments(ctx context.Context) ([]*vaultDomain.Document, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.db == nil {
		return nil, vaultDomain.ErrVaultNotOpen
	}

	var docs []*vaultDomain.Document
	err := v.txManager.WithTx(ctx, func(ctx context.Context) error {
		sealedDocs, err := v.repo.List(ctx)
		if err != nil {
			return err
		}

		docs = make([]*vaultDomain.Document, 0, len(sealedDocs))
		for _, sealed := range sealedDocs {
			doc, err := v.touch(ctx, sealed)
			if err != nil {
				return err
			}
			docs = append(docs, doc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

// GetDocument decrypts one document and marks it as accessed.
func (v *vault) GetDocument(ctx context.Context, id string) (*vaultDomain.Document, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.db == nil {
		return nil, vaultDomain.ErrVaultNotOpen
	}

	var doc *vaultDomain.Document
	err := v.txManager.WithTx(ctx, func(ctx context.Context) error {
		sealed, err := v.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		doc, err = v.touch(ctx, sealed)
		return err
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// RemoveDocument deletes a document and reports whether it existed.
func (v *vault) RemoveDocument(ctx context.Context, id string) (bool, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.db == nil {
		return false, vaultDomain.ErrVaultNotOpen
	}

	return v.repo.Delete(ctx, id)
}

// ClearAll removes every document. The vault stays open with the same key.
func (v *vault) ClearAll(ctx context.Context) error {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.db == nil {
		return vaultDomain.ErrVaultNotOpen
	}

	return v.repo.DeleteAll(ctx)
}

// GetStats counts documents without decrypting them.
func (v *vault) GetStats(ctx context.Context) (vaultDomain.Stats, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.db == nil {
		return vaultDomain.Stats{}, vaultDomain.ErrVaultNotOpen
	}

	return v.repo.Stats(ctx)
}

// touch decrypts sealed, stamps LastAccessedAt and writes the record back.
func (v *vault) touch(ctx context.Context, sealed *vaultDomain.SealedDocument) (*vaultDomain.Document, error) {
	record, err := v.openRecord(sealed)
	if err != nil {
		return nil, err
	}

	content, err := v.content.Decrypt(record.EncryptedContent, record.ContentNonce, contentAAD(sealed.ID))
	if err != nil {
		return nil, apperrors.Wrapf(vaultDomain.ErrDocumentCorrupted, "document %s", sealed.ID)
	}

	record.LastAccessedAt = v.now()
	resealed, err := v.sealRecord(sealed.ID, *record, sealed.FileSize)
	if err != nil {
		return nil, err
	}
	if err := v.repo.Upsert(ctx, resealed); err != nil {
		return nil, err
	}

	return &vaultDomain.Document{
		ID:             sealed.ID,
		FileName:       record.FileName,
		DocumentType:   record.DocumentType,
		Content:        content,
		UploadedAt:     record.UploadedAt,
		LastAccessedAt: record.LastAccessedAt,
		FileSize:       sealed.FileSize,
		Tags:           record.Tags,
	}, nil
}

func (v *vault) sealRecord(id string, record sealedRecord, fileSize int64) (*vaultDomain.SealedDocument, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encode document record")
	}
	defer cryptoDomain.Zero(payload)

	ciphertext, nonce, err := v.storage.Encrypt(payload, documentAAD(id))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to seal document record")
	}

	return &vaultDomain.SealedDocument{ID: id, Record: ciphertext, Nonce: nonce, FileSize: fileSize}, nil
}

func (v *vault) openRecord(sealed *vaultDomain.SealedDocument) (*sealedRecord, error) {
	payload, err := v.storage.Decrypt(sealed.Record, sealed.Nonce, documentAAD(sealed.ID))
	if err != nil {
		return nil, apperrors.Wrapf(vaultDomain.ErrDocumentCorrupted, "document %s", sealed.ID)
	}
	defer cryptoDomain.Zero(payload)

	var record sealedRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, apperrors.Wrapf(vaultDomain.ErrDocumentCorrupted, "document %s", sealed.ID)
	}

	return &record, nil
}

// deriveSubkey expands one half of the device key into an independent AEAD key.
func deriveSubkey(secret []byte, info string) ([]byte, error) {
	reader := hkdf.New(sha256.New, secret, nil, []byte(info))

	subkey := make([]byte, cryptoDomain.KeySize)
	if _, err := io.ReadFull(reader, subkey); err != nil {
		return nil, err
	}

	return subkey, nil
}

func documentAAD(id string) []byte {
	return []byte("offline_documents/" + id)
}

func contentAAD(id string) []byte {
	return []byte("offline_documents/content/" + id)
}
