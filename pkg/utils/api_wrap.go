package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinel errors onto the response envelope.
// Credential failures share one message so callers cannot probe for accounts.
func HandleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials.")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already exists.")
	case errors.Is(err, ErrNotAuthorized):
		RespondError(c, http.StatusForbidden, "Not authorized.")
	case errors.Is(err, ErrPetNotFound):
		RespondError(c, http.StatusNotFound, "Pet not found.")
	case errors.Is(err, ErrInvalidToken):
		RespondError(c, http.StatusUnauthorized, "Invalid or expired session")
	case errors.Is(err, ErrDatabaseError), errors.Is(err, ErrPaymentProvider):
		logger.Error("downstream failure", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		RespondError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
	default:
		logger.Error("unknown error", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), ErrValidation.Error()+": ")
	if msg == "" || msg == ErrValidation.Error() {
		return "Invalid form data."
	}
	return msg
}
