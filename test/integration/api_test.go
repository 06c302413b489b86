// Package integration runs the key API end to end against PostgreSQL and MySQL.
package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"

	"github.com/allisson/legacyvault/internal/app"
	"github.com/allisson/legacyvault/internal/config"
	"github.com/allisson/legacyvault/internal/keys/http/dto"
	"github.com/allisson/legacyvault/internal/testutil"
)

const (
	testPassword    = "Correct-Horse-42-Battery"
	rotatedPassword = "Rotated-Staple-77-Horse!"
)

// integrationTestContext holds the running API and the database behind it.
type integrationTestContext struct {
	container *app.Container
	db        *sql.DB
	server    *httptest.Server
	dbDriver  string
}

func setupIntegrationTest(t *testing.T, dbDriver string) *integrationTestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)
	db := testutil.SetupDB(t, dbDriver)

	cfg := &config.Config{
		DBDriver:             dbDriver,
		DBConnectionString:   testutil.DSN(dbDriver),
		DBMaxOpenConnections: 10,
		DBMaxIdleConnections: 5,
		DBConnMaxLifetime:    time.Hour,
		ServerHost:           "localhost",
		ServerPort:           8080,
		LogLevel:             "error",
		AuthJWTSecret:        "integration-test-secret",
		AuthJWTIssuer:        "legacyvault",
		KeysAlgorithm:        "aes-gcm",
		KeysKDF:              "pbkdf2-sha256",
		KeysPBKDF2Iterations: 100_000,
		KeysSaltLength:       32,
	}

	container := app.NewContainer(cfg)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := container.Shutdown(ctx); err != nil {
			t.Logf("Warning: container shutdown: %v", err)
		}
	})

	server, err := container.HTTPServer()
	require.NoError(t, err, "failed to build http server")

	ts := httptest.NewServer(server.GetHandler())
	t.Cleanup(ts.Close)

	return &integrationTestContext{
		container: container,
		db:        db,
		server:    ts,
		dbDriver:  dbDriver,
	}
}

func (ctx *integrationTestContext) token(t *testing.T, userID string) string {
	t.Helper()

	tokenService, err := ctx.container.TokenService()
	require.NoError(t, err)

	token, err := tokenService.Issue(userID, time.Hour)
	require.NoError(t, err)
	return token
}

// makeRequest performs an HTTP request as userID and returns the status code and body.
// An empty userID sends no Authorization header.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, path, userID string,
	body any,
) (int, []byte) {
	t.Helper()

	var token string
	if userID != "" {
		token = ctx.token(t, userID)
	}

	status, respBody, err := ctx.doRequest(method, path, token, body)
	require.NoError(t, err)
	return status, respBody
}

// doRequest is safe to call from any goroutine.
func (ctx *integrationTestContext) doRequest(method, path, token string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ctx.server.URL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	return resp.StatusCode, respBody, err
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(body, &v), "body: %s", body)
	return v
}

func TestIntegration_KeyLifecycle(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql"} {
		t.Run(driver, func(t *testing.T) {
			ctx := setupIntegrationTest(t, driver)
			userID := "user-" + driver

			t.Run("health", func(t *testing.T) {
				status, _ := ctx.makeRequest(t, http.MethodGet, "/health", "", nil)
				assert.Equal(t, http.StatusOK, status)

				status, _ = ctx.makeRequest(t, http.MethodGet, "/ready", "", nil)
				assert.Equal(t, http.StatusOK, status)
			})

			t.Run("requires token", func(t *testing.T) {
				status, _ := ctx.makeRequest(t, http.MethodGet, "/keys", "", nil)
				assert.Equal(t, http.StatusUnauthorized, status)
			})

			t.Run("get before generate", func(t *testing.T) {
				status, _ := ctx.makeRequest(t, http.MethodGet, "/keys", userID, nil)
				assert.Equal(t, http.StatusNotFound, status)
			})

			t.Run("weak password", func(t *testing.T) {
				status, body := ctx.makeRequest(t, http.MethodPost, "/keys/generate", userID,
					dto.GenerateKeysRequest{Password: "short"})
				assert.Equal(t, http.StatusBadRequest, status)
				assert.Contains(t, string(body), "details")
			})

			var publicKey string
			t.Run("generate", func(t *testing.T) {
				status, body := ctx.makeRequest(t, http.MethodPost, "/keys/generate", userID,
					dto.GenerateKeysRequest{Password: testPassword})
				require.Equal(t, http.StatusOK, status, "body: %s", body)

				resp := decode[dto.PublicKeyResponse](t, body)
				assert.True(t, resp.Success)
				assert.Equal(t, dto.MessageKeysGenerated, resp.Message)
				publicKey = resp.PublicKey
				assert.NotContains(t, string(body), "privateKey")
			})

			t.Run("generate twice", func(t *testing.T) {
				status, _ := ctx.makeRequest(t, http.MethodPost, "/keys/generate", userID,
					dto.GenerateKeysRequest{Password: testPassword})
				assert.Equal(t, http.StatusBadRequest, status)
			})

			t.Run("get public key", func(t *testing.T) {
				status, body := ctx.makeRequest(t, http.MethodGet, "/keys", userID, nil)
				require.Equal(t, http.StatusOK, status)

				resp := decode[dto.GetPublicKeyResponse](t, body)
				assert.Equal(t, publicKey, resp.PublicKey)
				assert.Equal(t, uint(1), resp.Metadata.Version)
				assert.Equal(t, "aes-gcm", resp.Metadata.Algorithm)
			})

			t.Run("retrieve", func(t *testing.T) {
				status, body := ctx.makeRequest(t, http.MethodPost, "/keys", userID,
					dto.RetrieveKeysRequest{Password: testPassword})
				require.Equal(t, http.StatusOK, status)

				resp := decode[dto.KeyPairResponse](t, body)
				assert.Equal(t, publicKey, resp.PublicKey)

				privateKey, err := base64.StdEncoding.DecodeString(resp.PrivateKey)
				require.NoError(t, err)
				derived, err := curve25519.X25519(privateKey, curve25519.Basepoint)
				require.NoError(t, err)
				assert.Equal(t, publicKey, base64.StdEncoding.EncodeToString(derived))
			})

			t.Run("retrieve with wrong password", func(t *testing.T) {
				status, body := ctx.makeRequest(t, http.MethodPost, "/keys", userID,
					dto.RetrieveKeysRequest{Password: "Wrong-Password-123!"})
				assert.Equal(t, http.StatusUnauthorized, status)
				assert.Contains(t, string(body), "failed to retrieve keys, check your password")
			})

			t.Run("rotate", func(t *testing.T) {
				status, body := ctx.makeRequest(t, http.MethodPost, "/keys/rotate", userID,
					dto.RotateKeysRequest{CurrentPassword: testPassword, NewPassword: rotatedPassword})
				require.Equal(t, http.StatusOK, status, "body: %s", body)

				resp := decode[dto.PublicKeyResponse](t, body)
				assert.NotEqual(t, publicKey, resp.PublicKey)
				publicKey = resp.PublicKey

				assert.Equal(t, 1, testutil.CountActiveKeys(t, ctx.db, ctx.dbDriver, userID))
			})

			t.Run("old password rejected after rotation", func(t *testing.T) {
				status, _ := ctx.makeRequest(t, http.MethodPost, "/keys", userID,
					dto.RetrieveKeysRequest{Password: testPassword})
				assert.Equal(t, http.StatusUnauthorized, status)

				status, body := ctx.makeRequest(t, http.MethodGet, "/keys", userID, nil)
				require.Equal(t, http.StatusOK, status)
				resp := decode[dto.GetPublicKeyResponse](t, body)
				assert.Equal(t, uint(2), resp.Metadata.Version)
				assert.Equal(t, publicKey, resp.PublicKey)
			})

			t.Run("audit logs", func(t *testing.T) {
				status, body := ctx.makeRequest(t, http.MethodGet, "/keys/audit-logs?limit=50", userID, nil)
				require.Equal(t, http.StatusOK, status)

				resp := decode[dto.ListAuditLogsResponse](t, body)
				events := make(map[string]int)
				failures := 0
				for _, entry := range resp.Data {
					events[entry.EventType]++
					if !entry.Success {
						failures++
					}
					assert.NotNil(t, entry.RequestID)
				}
				assert.GreaterOrEqual(t, events["keys.generate"], 1)
				assert.GreaterOrEqual(t, events["keys.retrieve_private"], 3)
				assert.Equal(t, 1, events["keys.rotate"])
				assert.GreaterOrEqual(t, failures, 2)
				assert.NotContains(t, string(body), testPassword)
			})

			t.Run("audit logs are per user", func(t *testing.T) {
				status, body := ctx.makeRequest(t, http.MethodGet, "/keys/audit-logs", "someone-else", nil)
				require.Equal(t, http.StatusOK, status)
				assert.Empty(t, decode[dto.ListAuditLogsResponse](t, body).Data)
			})
		})
	}
}

func TestIntegration_ConcurrentGenerate(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql"} {
		t.Run(driver, func(t *testing.T) {
			ctx := setupIntegrationTest(t, driver)
			userID := "concurrent-" + driver

			token := ctx.token(t, userID)

			const workers = 5
			statuses := make([]int, workers)
			errs := make([]error, workers)

			var wg sync.WaitGroup
			for i := range workers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					statuses[i], _, errs[i] = ctx.doRequest(http.MethodPost, "/keys/generate", token,
						dto.GenerateKeysRequest{Password: testPassword})
				}()
			}
			wg.Wait()

			for _, err := range errs {
				require.NoError(t, err)
			}

			succeeded := 0
			for _, status := range statuses {
				if status == http.StatusOK {
					succeeded++
					continue
				}
				assert.Equal(t, http.StatusBadRequest, status, fmt.Sprintf("statuses: %v", statuses))
			}
			assert.Equal(t, 1, succeeded)
			assert.Equal(t, 1, testutil.CountActiveKeys(t, ctx.db, ctx.dbDriver, userID))
		})
	}
}
