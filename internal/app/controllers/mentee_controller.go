package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/mentorlink/internal/app/models"
	"github.com/oguzk/mentorlink/internal/app/models/dto"
	"github.com/oguzk/mentorlink/internal/app/services"
	"github.com/oguzk/mentorlink/internal/middleware"
	"github.com/oguzk/mentorlink/internal/pkg/apperrors"
)

// MenteeController handles mentee roster resolution
type MenteeController struct {
	mentees services.MenteeService
	logger  zerolog.Logger
}

// NewMenteeController creates a new MenteeController
func NewMenteeController(mentees services.MenteeService, logger zerolog.Logger) *MenteeController {
	return &MenteeController{
		mentees: mentees,
		logger:  logger,
	}
}

// resolve runs the mentee scan and writes the roster response. A store
// failure during the scan degrades to an empty roster rather than an
// error page; the mentee list is informational, not authoritative.
func (c *MenteeController) resolve(ctx *gin.Context, facultyID string) {
	students, err := c.mentees.ResolveMentees(ctx.Request.Context(), facultyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidationFailed) {
			middleware.HandleAPIError(ctx, err)
			return
		}
		c.logger.Error().Err(err).Str("facultyID", facultyID).Msg("Mentee resolution failed, returning empty roster")
		ctx.JSON(http.StatusOK, dto.NewMenteeListResponse(nil))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMenteeListResponse(students))
}

// GetMyMentees resolves the calling faculty member's mentees
// @Summary List my mentees
// @Description Resolves the students mapped to the calling faculty member
// @Tags mentees
// @Produce json
// @Success 200 {object} dto.MenteeListResponse "Resolved mentee roster"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a faculty member"
// @Router /mentees [get]
func (c *MenteeController) GetMyMentees(ctx *gin.Context) {
	identity := middleware.IdentityFromContext(ctx)
	if identity == nil {
		middleware.HandleAPIError(ctx, apperrors.ErrNoSession)
		return
	}

	if identity.Type != models.TypeFaculty || identity.FacultyData == nil {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	c.resolve(ctx, identity.FacultyData.FacultyID)
}

// GetMenteesByFaculty resolves another faculty member's mentees.
// Restricted to privileged user types by route middleware.
// @Summary List a faculty member's mentees
// @Tags mentees
// @Produce json
// @Param facultyId path string true "Faculty ID"
// @Success 200 {object} dto.MenteeListResponse "Resolved mentee roster"
// @Failure 400 {object} dto.ErrorResponse "Missing faculty ID"
// @Failure 403 {object} dto.ErrorResponse "Caller lacks permission"
// @Router /faculty/{facultyId}/mentees [get]
func (c *MenteeController) GetMenteesByFaculty(ctx *gin.Context) {
	c.resolve(ctx, ctx.Param("facultyId"))
}
