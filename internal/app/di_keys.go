package app

import (
	"fmt"
	"math"
	"sync"

	auditRepository "github.com/allisson/legacyvault/internal/audit/repository"
	auditUseCase "github.com/allisson/legacyvault/internal/audit/usecase"
	authService "github.com/allisson/legacyvault/internal/auth/service"
	cryptoDomain "github.com/allisson/legacyvault/internal/crypto/domain"
	cryptoService "github.com/allisson/legacyvault/internal/crypto/service"
	keysHTTP "github.com/allisson/legacyvault/internal/keys/http"
	keysRepository "github.com/allisson/legacyvault/internal/keys/repository"
	keysUseCase "github.com/allisson/legacyvault/internal/keys/usecase"
	"github.com/allisson/legacyvault/internal/validation"
)

// keyComponents groups the keypair vault dependencies held by the Container.
type keyComponents struct {
	aeadManager        cryptoService.AEADManager
	keyDeriver         cryptoService.KeyDeriver
	keyPairGenerator   cryptoService.KeyPairGenerator
	keyRepository      keysUseCase.KeyRepository
	auditLogRepository auditUseCase.AuditLogRepository
	auditLogUseCase    auditUseCase.AuditLogUseCase
	keyUseCase         keysUseCase.KeyUseCase
	tokenService       authService.TokenService
	keyHandler         *keysHTTP.KeyHandler

	aeadManagerInit        sync.Once
	keyDeriverInit         sync.Once
	keyPairGeneratorInit   sync.Once
	keyRepositoryInit      sync.Once
	auditLogRepositoryInit sync.Once
	auditLogUseCaseInit    sync.Once
	keyUseCaseInit         sync.Once
	tokenServiceInit       sync.Once
	keyHandlerInit         sync.Once
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// KeyDeriver returns the password key deriver.
func (c *Container) KeyDeriver() cryptoService.KeyDeriver {
	c.keyDeriverInit.Do(func() {
		c.keyDeriver = cryptoService.NewKeyDeriver()
	})
	return c.keyDeriver
}

// KeyPairGenerator returns the X25519 keypair generator.
func (c *Container) KeyPairGenerator() cryptoService.KeyPairGenerator {
	c.keyPairGeneratorInit.Do(func() {
		c.keyPairGenerator = cryptoService.NewKeyPairGenerator()
	})
	return c.keyPairGenerator
}

// KeyRepository returns the key repository for the configured driver.
func (c *Container) KeyRepository() (keysUseCase.KeyRepository, error) {
	var err error
	c.keyRepositoryInit.Do(func() {
		c.keyRepository, err = c.initKeyRepository()
		if err != nil {
			c.setInitError("keyRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("keyRepository"); storedErr != nil {
		return nil, storedErr
	}
	return c.keyRepository, nil
}

// AuditLogRepository returns the key audit log repository for the configured driver.
func (c *Container) AuditLogRepository() (auditUseCase.AuditLogRepository, error) {
	var err error
	c.auditLogRepositoryInit.Do(func() {
		c.auditLogRepository, err = c.initAuditLogRepository()
		if err != nil {
			c.setInitError("auditLogRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("auditLogRepository"); storedErr != nil {
		return nil, storedErr
	}
	return c.auditLogRepository, nil
}

// AuditLogUseCase returns the key audit log use case.
func (c *Container) AuditLogUseCase() (auditUseCase.AuditLogUseCase, error) {
	var err error
	c.auditLogUseCaseInit.Do(func() {
		var repo auditUseCase.AuditLogRepository
		repo, err = c.AuditLogRepository()
		if err != nil {
			err = fmt.Errorf("failed to get audit log repository for audit log use case: %w", err)
			c.setInitError("auditLogUseCase", err)
			return
		}
		c.auditLogUseCase = auditUseCase.NewAuditLogUseCase(repo)
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("auditLogUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.auditLogUseCase, nil
}

// KeyUseCase returns the keypair vault use case, wrapped with business metrics.
func (c *Container) KeyUseCase() (keysUseCase.KeyUseCase, error) {
	var err error
	c.keyUseCaseInit.Do(func() {
		c.keyUseCase, err = c.initKeyUseCase()
		if err != nil {
			c.setInitError("keyUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("keyUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.keyUseCase, nil
}

// TokenService returns the bearer token service.
func (c *Container) TokenService() (authService.TokenService, error) {
	var err error
	c.tokenServiceInit.Do(func() {
		c.tokenService, err = authService.NewTokenService(c.config.AuthJWTSecret, c.config.AuthJWTIssuer)
		if err != nil {
			err = fmt.Errorf("failed to create token service: %w", err)
			c.setInitError("tokenService", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("tokenService"); storedErr != nil {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// KeyHandler returns the /keys HTTP handler.
func (c *Container) KeyHandler() (*keysHTTP.KeyHandler, error) {
	var err error
	c.keyHandlerInit.Do(func() {
		c.keyHandler, err = c.initKeyHandler()
		if err != nil {
			c.setInitError("keyHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("keyHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.keyHandler, nil
}

func (c *Container) initKeyRepository() (keysUseCase.KeyRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for key repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return keysRepository.NewMySQLKeyRepository(db), nil
	case "postgres":
		return keysRepository.NewPostgreSQLKeyRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initAuditLogRepository() (auditUseCase.AuditLogRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for audit log repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return auditRepository.NewMySQLAuditLogRepository(db), nil
	case "postgres":
		return auditRepository.NewPostgreSQLAuditLogRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initKeyUseCase() (keysUseCase.KeyUseCase, error) {
	cfg, err := c.keyUseCaseConfig()
	if err != nil {
		return nil, err
	}

	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for key use case: %w", err)
	}

	keyRepo, err := c.KeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get key repository for key use case: %w", err)
	}

	auditLogUseCase, err := c.AuditLogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log use case for key use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for key use case: %w", err)
	}

	useCase := keysUseCase.NewKeyUseCase(
		txManager,
		keyRepo,
		auditLogUseCase,
		c.AEADManager(),
		c.KeyDeriver(),
		c.KeyPairGenerator(),
		cfg,
		c.Logger(),
	)

	return keysUseCase.NewKeyUseCaseWithMetrics(useCase, businessMetrics), nil
}

// keyUseCaseConfig builds the parameters for newly sealed key records.
func (c *Container) keyUseCaseConfig() (keysUseCase.Config, error) {
	algorithm, err := cryptoDomain.ParseAlgorithm(c.config.KeysAlgorithm)
	if err != nil {
		return keysUseCase.Config{}, fmt.Errorf("invalid KEYS_ALGORITHM %q: %w", c.config.KeysAlgorithm, err)
	}

	var params cryptoDomain.KDFParams
	switch cryptoDomain.KDFAlgorithm(c.config.KeysKDF) {
	case cryptoDomain.PBKDF2SHA256:
		params = cryptoDomain.KDFParams{
			Algorithm:  cryptoDomain.PBKDF2SHA256,
			Iterations: clampUint32(c.config.KeysPBKDF2Iterations),
		}
	case cryptoDomain.Argon2id:
		params = cryptoDomain.KDFParams{
			Algorithm: cryptoDomain.Argon2id,
			Time:      clampUint32(c.config.KeysArgon2Time),
			MemoryKiB: clampUint32(c.config.KeysArgon2MemoryKiB),
			Threads:   uint8(min(max(c.config.KeysArgon2Threads, 0), math.MaxUint8)),
		}
	default:
		return keysUseCase.Config{}, fmt.Errorf("invalid KEYS_KDF %q: %w", c.config.KeysKDF, cryptoDomain.ErrUnsupportedKDF)
	}
	if err := params.Validate(); err != nil {
		return keysUseCase.Config{}, fmt.Errorf("invalid key derivation settings: %w", err)
	}

	if c.config.KeysSaltLength < cryptoDomain.MinSaltSize {
		return keysUseCase.Config{}, fmt.Errorf(
			"invalid KEYS_SALT_LENGTH %d: must be at least %d",
			c.config.KeysSaltLength,
			cryptoDomain.MinSaltSize,
		)
	}

	return keysUseCase.Config{
		Algorithm:      algorithm,
		KDFParams:      params,
		SaltSize:       c.config.KeysSaltLength,
		PasswordPolicy: validation.DefaultPasswordStrength,
	}, nil
}

func (c *Container) initKeyHandler() (*keysHTTP.KeyHandler, error) {
	keyUseCase, err := c.KeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get key use case for key handler: %w", err)
	}

	auditLogUseCase, err := c.AuditLogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log use case for key handler: %w", err)
	}

	return keysHTTP.NewKeyHandler(keyUseCase, auditLogUseCase, c.Logger()), nil
}

// clampUint32 maps negative settings to zero so Validate rejects them.
func clampUint32(v int) uint32 {
	return uint32(min(max(int64(v), 0), math.MaxUint32))
}
