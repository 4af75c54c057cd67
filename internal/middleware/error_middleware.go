package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/mentorlink/internal/app/models/dto"
	"github.com/oguzk/mentorlink/internal/pkg/apperrors"
)

// HandleAPIError maps the application error taxonomy onto HTTP responses.
// Controllers delegate here so every endpoint reports the same status and
// body for the same failure.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNoSession):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeNoSession, "No session credential present")))
	case errors.Is(err, apperrors.ErrInvalidSessionFormat):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidSessionFormat, "Malformed session credential")))
	case errors.Is(err, apperrors.ErrInvalidProviderSession):
		c.JSON(403, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidProviderSession, "Session rejected by identity provider")))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUserNotFound, "User record not found")))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")))
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		c.JSON(503, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeStoreUnavailable, "Record store unavailable").
				WithSeverity(dto.ErrorSeverityCritical)))
	default:
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// AbortWithAPIError writes the mapped error response and stops the
// handler chain. For use from middleware.
func AbortWithAPIError(c *gin.Context, err error) {
	HandleAPIError(c, err)
	c.Abort()
}
