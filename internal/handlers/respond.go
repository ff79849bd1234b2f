package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/FurkanErogluu/shopping-cart/internal/apperrors"
	"github.com/FurkanErogluu/shopping-cart/internal/middleware"
	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint responds with.
type APIResponse struct {
	Success bool      `json:"success"`
	Status  int       `json:"status"`
	Payload any       `json:"payload,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// APIError carries a stable machine-readable code and a human message.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusByCode maps business error codes to HTTP statuses where the code's
// class alone would pick the wrong one. ITEM_NOT_FOUND is a 400: the item is
// addressed through a request body operation, not a URL resource.
var statusByCode = map[string]int{
	"EMAIL_EXISTS":            http.StatusConflict,
	"INVALID_CREDENTIALS":     http.StatusUnauthorized,
	"INVALID_REFRESH_TOKEN":   http.StatusUnauthorized,
	"USER_NOT_FOUND":          http.StatusNotFound,
	"PRODUCT_NOT_FOUND":       http.StatusNotFound,
	"SHOPPING_LIST_NOT_FOUND": http.StatusNotFound,
	"ITEM_NOT_FOUND":          http.StatusBadRequest,
	"ITEM_ALREADY_EXISTS":     http.StatusConflict,
	"MEMBER_ALREADY_EXISTS":   http.StatusBadRequest,
	"MEMBER_NOT_FOUND":        http.StatusNotFound,
	"SELF_CONNECTION":         http.StatusBadRequest,
	"ALREADY_CONNECTED":       http.StatusConflict,
	"CONNECTION_NOT_FOUND":    http.StatusNotFound,
	"NO_CONNECTION":           http.StatusBadRequest,
	"INVALID_OPERATION":       http.StatusBadRequest,
}

// statusForClass falls back on the error's class sentinel.
func statusForClass(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrInvalidOperation), errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondOK writes a success envelope with the given payload.
func respondOK(c *gin.Context, status int, payload any) {
	c.JSON(status, APIResponse{Success: true, Status: status, Payload: payload})
}

// respondError maps a service error to the envelope. Business errors keep
// their code and message; anything else is masked as an internal error.
func respondError(c *gin.Context, err error) {
	if bizErr, ok := apperrors.AsBusiness(err); ok {
		status, mapped := statusByCode[bizErr.Code]
		if !mapped {
			status = statusForClass(err)
		}
		c.JSON(status, APIResponse{
			Success: false,
			Status:  status,
			Error:   &APIError{Code: bizErr.Code, Message: bizErr.Message},
		})
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Error("Unhandled error in handler", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, APIResponse{
		Success: false,
		Status:  http.StatusInternalServerError,
		Error:   &APIError{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"},
	})
}

// respondQuantityError rejects zero or negative item quantities. Decimal
// fields cannot express this through binding tags, so handlers check it
// after binding.
func respondQuantityError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Status:  http.StatusBadRequest,
		Error:   &APIError{Code: "VALIDATION_ERROR", Message: "Invalid request: quantity must be greater than zero"},
	})
}

// respondValidationError reports a malformed or invalid request body.
func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Status:  http.StatusBadRequest,
		Error:   &APIError{Code: "VALIDATION_ERROR", Message: "Invalid request: " + err.Error()},
	})
}
