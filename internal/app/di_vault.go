package app

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	cryptoService "github.com/allisson/legacyvault/internal/crypto/service"
	"github.com/allisson/legacyvault/internal/offlinevault/keystore"
	vaultRepository "github.com/allisson/legacyvault/internal/offlinevault/repository"
	vaultUseCase "github.com/allisson/legacyvault/internal/offlinevault/usecase"
)

// vaultComponents groups the offline vault dependencies held by the Container.
type vaultComponents struct {
	kmsService     cryptoService.KMSService
	keeper         cryptoService.Keeper
	vault          vaultUseCase.Vault
	deviceKeyStore vaultUseCase.DeviceKeyStore

	kmsServiceInit     sync.Once
	keeperInit         sync.Once
	vaultInit          sync.Once
	deviceKeyStoreInit sync.Once
}

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// Keeper returns the keeper that wraps the device key, opened from VAULT_KEY_KEEPER_URI.
func (c *Container) Keeper() (cryptoService.Keeper, error) {
	var err error
	c.keeperInit.Do(func() {
		c.keeper, err = c.initKeeper()
		if err != nil {
			c.setInitError("keeper", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("keeper"); storedErr != nil {
		return nil, storedErr
	}
	return c.keeper, nil
}

// Vault returns the offline vault. It is closed until Open is called with the device key.
func (c *Container) Vault() vaultUseCase.Vault {
	c.vaultInit.Do(func() {
		c.vault = vaultUseCase.NewVault(
			vaultUseCase.Config{
				Path:        c.config.VaultPath,
				OpenTimeout: c.config.VaultOpenTimeout,
			},
			c.AEADManager(),
			func(db *sql.DB) vaultUseCase.DocumentRepository {
				return vaultRepository.NewSQLiteDocumentRepository(db)
			},
			c.Logger(),
		)
	})
	return c.vault
}

// DeviceKeyStore returns the file backed device key store.
func (c *Container) DeviceKeyStore() (vaultUseCase.DeviceKeyStore, error) {
	var err error
	c.deviceKeyStoreInit.Do(func() {
		var keeper cryptoService.Keeper
		keeper, err = c.Keeper()
		if err != nil {
			err = fmt.Errorf("failed to get keeper for device key store: %w", err)
			c.setInitError("deviceKeyStore", err)
			return
		}
		c.deviceKeyStore = keystore.NewFileKeyStore(c.config.VaultKeyPath, keeper)
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("deviceKeyStore"); storedErr != nil {
		return nil, storedErr
	}
	return c.deviceKeyStore, nil
}

func (c *Container) initKeeper() (cryptoService.Keeper, error) {
	if c.config.VaultKeyKeeperURI == "" {
		return nil, errors.New("VAULT_KEY_KEEPER_URI is required to protect the device key")
	}

	keeper, err := c.KMSService().OpenKeeper(c.ctx, c.config.VaultKeyKeeperURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open device key keeper: %w", err)
	}
	return keeper, nil
}
