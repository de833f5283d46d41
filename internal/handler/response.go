package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hedgeapi/internal/models"
	"hedgeapi/internal/repository"
	"hedgeapi/internal/service"
)

const maxErrorMessage = 80

type apiResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    any            `json:"data,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

type createdResponse struct {
	ID string `json:"id"`
}

func Error(c *gin.Context, status int, message string, meta map[string]any) {
	c.JSON(status, apiResponse{
		Code:    status,
		Message: message,
		Meta:    meta,
	})
}

// Fail maps a service error onto a status code and the error envelope.
func Fail(c *gin.Context, err error) {
	var verr *models.ValidationError
	var serr *repository.StorageError
	switch {
	case errors.As(err, &verr):
		Error(c, http.StatusUnprocessableEntity, "validation failed", map[string]any{
			"violations": verr.Violations,
		})
	case repository.IsUnavailable(err):
		Error(c, http.StatusServiceUnavailable, "storage unavailable", nil)
	case errors.As(err, &serr):
		Error(c, http.StatusInternalServerError, "storage error: "+service.Truncate(serr.Err.Error(), maxErrorMessage), map[string]any{
			"op": serr.Op,
		})
	default:
		Error(c, http.StatusInternalServerError, service.Truncate(err.Error(), maxErrorMessage), nil)
	}
}

func created(c *gin.Context, res service.CreateResult) {
	if res.Replayed {
		c.Header("Idempotent-Replayed", "true")
	}
	c.JSON(http.StatusOK, createdResponse{ID: res.ID})
}

func createOptions(c *gin.Context) service.CreateOptions {
	return service.CreateOptions{
		IdempotencyKey: strings.TrimSpace(c.GetHeader("Idempotency-Key")),
	}
}
