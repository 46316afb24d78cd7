package graphql

import (
	"context"
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/gqlerror"

	apierrors "github.com/propsetu/estate-backend/internal/api/shared/errors"
	"github.com/propsetu/estate-backend/internal/logger"
)

// ErrorPresenter formats errors in a consistent way matching the REST API
// format. This is the GraphQL adapter for the shared APIError; gqlgen calls
// it for every resolver error.
func ErrorPresenter(ctx context.Context, err error) *gqlerror.Error {
	var gqlErr *gqlerror.Error
	if !errors.As(err, &gqlErr) {
		gqlErr = &gqlerror.Error{
			Message: err.Error(),
		}
	}

	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		// Unknown errors are logged and replaced with a generic message
		return handleInternalError(ctx, err)
	}

	switch apiErr.Code {
	case apierrors.ErrCodeInternalError, apierrors.ErrCodeServiceError, apierrors.ErrCodeDatabaseError:
		return handleInternalError(ctx, err)
	default:
		gqlErr.Message = apiErr.Message
		gqlErr.Extensions = map[string]interface{}{
			"code":    string(apiErr.Code),
			"message": apiErr.Message,
		}
		if apiErr.Details != "" {
			gqlErr.Extensions["details"] = apiErr.Details
		}
	}

	return gqlErr
}

// handleInternalError logs the real error and returns a client-safe one
func handleInternalError(ctx context.Context, err error) *gqlerror.Error {
	logger.ErrorCtx(ctx, err)
	return &gqlerror.Error{
		Message: "Internal server error",
		Extensions: map[string]interface{}{
			"code":    string(apierrors.ErrCodeInternalError),
			"message": "Internal server error",
		},
	}
}

// RecoverFunc handles panics in resolvers
func RecoverFunc(ctx context.Context, err interface{}) error {
	logger.ErrorCtx(ctx, fmt.Errorf("panic: %v", err))
	return apierrors.NewInternalError("Internal server error")
}
