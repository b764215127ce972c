package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academics/internal/app/models/dto"
	"github.com/yigit/academics/internal/pkg/apperrors"
	"github.com/yigit/academics/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
	} else {
		detail.WithSeverity(dto.ErrorSeverityWarning)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	status, detail := classify(err)

	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Code != "" {
		detail.WithDetails(map[string]string{"reason": custom.Code})
	}
	return status, detail
}

func classify(err error) (int, *dto.ErrorDetail) {
	var custom *apperrors.CustomError
	field := ""
	if errors.As(err, &custom) {
		if f, ok := custom.Details["field"].(string); ok {
			field = f
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()).WithField(field)
	case errors.Is(err, apperrors.ErrNotEnrolled):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeNotEnrolled, err.Error())
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeAlreadyEnrolled, err.Error())
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, err.Error())
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	case errors.Is(err, apperrors.ErrIDSpaceExhausted):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeIDsExhausted, "No identifiers left")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
