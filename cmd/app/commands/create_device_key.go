package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/allisson/legacyvault/internal/crypto/domain"
	vaultUseCase "github.com/allisson/legacyvault/internal/offlinevault/usecase"
)

// RunCreateDeviceKey makes sure the offline vault device key exists, creating and
// wrapping a new one when the key file is missing. The key itself is never printed.
func RunCreateDeviceKey(
	ctx context.Context,
	keyStore vaultUseCase.DeviceKeyStore,
	logger *slog.Logger,
	writer io.Writer,
	keyPath string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	key, err := keyStore.LoadOrCreate(ctx)
	if err != nil {
		return fmt.Errorf("failed to load or create device key: %w", err)
	}
	keySize := len(key)
	cryptoDomain.Zero(key)

	logger.Info("device key ready", slog.String("path", keyPath))

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"path":     keyPath,
			"key_size": keySize,
		})
	}

	_, err = fmt.Fprintf(writer, "Device key ready at %s (%d bytes, wrapped by the configured keeper)\n", keyPath, keySize)
	return err
}
