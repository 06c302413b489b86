// Package http exposes the keypair vault over HTTP. All routes require an
// authenticated user; the user id always comes from the token, never the body.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	auditUseCase "github.com/allisson/legacyvault/internal/audit/usecase"
	authHTTP "github.com/allisson/legacyvault/internal/auth/http"
	apperrors "github.com/allisson/legacyvault/internal/errors"
	"github.com/allisson/legacyvault/internal/httputil"
	keysDomain "github.com/allisson/legacyvault/internal/keys/domain"
	"github.com/allisson/legacyvault/internal/keys/http/dto"
	keysUseCase "github.com/allisson/legacyvault/internal/keys/usecase"
	customValidation "github.com/allisson/legacyvault/internal/validation"
)

// KeyHandler handles the /keys endpoints.
type KeyHandler struct {
	keyUseCase      keysUseCase.KeyUseCase
	auditLogUseCase auditUseCase.AuditLogUseCase
	logger          *slog.Logger
}

// NewKeyHandler creates a new key handler.
func NewKeyHandler(
	keyUseCase keysUseCase.KeyUseCase,
	auditLogUseCase auditUseCase.AuditLogUseCase,
	logger *slog.Logger,
) *KeyHandler {
	return &KeyHandler{
		keyUseCase:      keyUseCase,
		auditLogUseCase: auditLogUseCase,
		logger:          logger,
	}
}

// GenerateHandler creates the caller's first keypair.
// POST /keys/generate - returns the public key only.
func (h *KeyHandler) GenerateHandler(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req dto.GenerateKeysRequest
	if !h.bind(c, &req) {
		return
	}

	record, err := h.keyUseCase.Generate(c.Request.Context(), userID, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRecordToPublicKeyResponse(record, dto.MessageKeysGenerated))
}

// GetPublicKeyHandler returns the caller's public key and record metadata.
// GET /keys
func (h *KeyHandler) GetPublicKeyHandler(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	record, err := h.keyUseCase.GetPublicKey(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRecordToGetPublicKeyResponse(record))
}

// RetrieveHandler decrypts and returns the caller's keypair.
// POST /keys - a wrong password and a corrupted record produce the same 401.
// SECURITY: the private key is zeroed once the response is written.
func (h *KeyHandler) RetrieveHandler(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req dto.RetrieveKeysRequest
	if !h.bind(c, &req) {
		return
	}

	keyPair, err := h.keyUseCase.RetrievePrivateKey(c.Request.Context(), userID, req.Password)
	if err != nil {
		h.handleKeyError(c, err)
		return
	}
	defer keyPair.Zero()

	c.JSON(http.StatusOK, dto.MapKeyPairToResponse(keyPair))
}

// RotateHandler replaces the caller's keypair.
// POST /keys/rotate
func (h *KeyHandler) RotateHandler(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req dto.RotateKeysRequest
	if !h.bind(c, &req) {
		return
	}

	record, err := h.keyUseCase.Rotate(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		h.handleKeyError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapRecordToPublicKeyResponse(record, dto.MessageKeysRotated))
}

// ListAuditLogsHandler returns the caller's own audit trail, newest first.
// GET /keys/audit-logs?offset=0&limit=50
func (h *KeyHandler) ListAuditLogsHandler(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	page, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	auditLogs, err := h.auditLogUseCase.ListByUserID(c.Request.Context(), userID, page.Offset, page.Limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAuditLogsToListResponse(auditLogs))
}

func (h *KeyHandler) userID(c *gin.Context) (string, bool) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return "", false
	}
	return principal.UserID, true
}

type validatable interface {
	Validate() error
}

func (h *KeyHandler) bind(c *gin.Context, req validatable) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return false
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return false
	}
	return true
}

func (h *KeyHandler) handleKeyError(c *gin.Context, err error) {
	if apperrors.Is(err, keysDomain.ErrKeyAuthenticationFailed) {
		httputil.HandleUnauthorizedGin(c, keysDomain.AuthenticationFailedMessage, h.logger)
		return
	}
	httputil.HandleErrorGin(c, err, h.logger)
}
