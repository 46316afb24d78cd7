package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/propsetu/estate-backend/internal/api/shared/errors"
	"github.com/propsetu/estate-backend/internal/logger"
)

// errorResponse wraps the shared APIError for REST payloads
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// statusForCode maps shared error codes to HTTP status codes
func statusForCode(code apierrors.ErrorCode) int {
	switch code {
	case apierrors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case apierrors.ErrCodeUnauthenticated:
		return http.StatusUnauthorized
	case apierrors.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError translates an executor error into an HTTP response. Server-side
// errors are logged and replaced with a generic message so that internals do
// not leak to clients.
func respondError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierrors.NewInternalError("Internal server error")
	}

	status := statusForCode(apiErr.Code)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("path", c.Request.URL.Path),
		)
		apiErr = &apierrors.APIError{
			Code:    apiErr.Code,
			Message: "Internal server error",
		}
	}

	c.JSON(status, errorResponse{Error: apiErr})
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: apierrors.NewBadRequestError(message, details...)})
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, errorResponse{Error: apierrors.NewNotFoundError(message, details...)})
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: apierrors.NewValidationError(message)})
}
