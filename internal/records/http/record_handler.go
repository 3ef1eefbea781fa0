// Package http provides HTTP handlers for envelope-encrypted records.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
	"github.com/allisson/sealbox/internal/httputil"
	"github.com/allisson/sealbox/internal/records/http/dto"
	recordsUseCase "github.com/allisson/sealbox/internal/records/usecase"
	customValidation "github.com/allisson/sealbox/internal/validation"
)

// RecordHandler handles HTTP requests for record encryption, lookup and decryption.
type RecordHandler struct {
	recordUseCase recordsUseCase.RecordUseCase
	logger        *slog.Logger
}

// NewRecordHandler creates a new record handler with required dependencies.
func NewRecordHandler(recordUseCase recordsUseCase.RecordUseCase, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		recordUseCase: recordUseCase,
		logger:        logger,
	}
}

// EncryptHandler encrypts a payload and stores the resulting record.
// POST /v1/tx/encrypt
// Returns 201 Created with the full SecureRecord.
func (h *RecordHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	record, err := h.recordUseCase.Create(c.Request.Context(), req.PartyID, req.Payload)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapRecordToResponse(record))
}

// GetHandler returns a stored record without decrypting it.
// GET /v1/tx/:id
func (h *RecordHandler) GetHandler(c *gin.Context) {
	record, err := h.recordUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRecordToResponse(record))
}

// DecryptHandler decrypts a stored record.
// POST /v1/tx/:id/decrypt
// Returns 200 OK with the payload. SECURITY: Plaintext is zeroed after the response is written.
func (h *RecordHandler) DecryptHandler(c *gin.Context) {
	payload, err := h.recordUseCase.Decrypt(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer envelopeDomain.Zero(payload)

	c.JSON(http.StatusOK, dto.DecryptResponse{Payload: payload})
}
