package handlers

import (
	"errors"
	"net/http"

	"settlement_console/internal/usecase"
	"settlement_console/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errMissingFile    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "A file field named \"file\" is required", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.StatusOrDefault(), appErr.ToHTTPError())
}

// invalidRequest reports a request that failed to bind or map, keeping the
// reason in the message.
func invalidRequest(c *gin.Context, err error) {
	writeError(c, pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest))
}

func mapConsoleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrder), errors.Is(err, usecase.ErrInvalidSettlement),
		errors.Is(err, usecase.ErrInvalidKPI), errors.Is(err, usecase.ErrInvalidPartSale),
		errors.Is(err, usecase.ErrInvalidOrderType), errors.Is(err, usecase.ErrInvalidBatchContext):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyPayload):
		return pkg.NewDomainError("EMPTY_PAYLOAD", "Nothing to import", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDecodeFailed):
		return pkg.NewDomainError("DECODE_FAILED", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTechnicianNotFound):
		return pkg.NewDomainError("TECHNICIAN_NOT_FOUND", "Technician not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrSettlementNotFound):
		return pkg.NewDomainError("SETTLEMENT_NOT_FOUND", "Settlement not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrSettlementNotPending):
		return pkg.NewDomainError("SETTLEMENT_NOT_PENDING", "Settlement has already been reviewed", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
