package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/oguzk/mentorlink/internal/app/models/dto"
	"github.com/oguzk/mentorlink/internal/app/services"
	"github.com/oguzk/mentorlink/internal/middleware"
	"github.com/oguzk/mentorlink/internal/pkg/apperrors"
)

// clientCookieName identifies the browser instance for session state
// synchronization. It is distinct from the session cookie: it survives
// logout so the same client keeps one state slot.
const clientCookieName = "mentorlink_client"

// AuthController handles session validation, login and logout
type AuthController struct {
	sessions     services.SessionService
	sync         *services.Synchronizer
	cookieName   string
	cookieMaxAge int
	logger       zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(
	sessions services.SessionService,
	sync *services.Synchronizer,
	cookieName string,
	cookieMaxAge int,
	logger zerolog.Logger,
) *AuthController {
	return &AuthController{
		sessions:     sessions,
		sync:         sync,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
		logger:       logger,
	}
}

// ensureClientID returns the client id cookie, minting one when absent
func (c *AuthController) ensureClientID(ctx *gin.Context) string {
	clientID, err := ctx.Cookie(clientCookieName)
	if err != nil || clientID == "" {
		clientID = uuid.NewString()
		ctx.SetCookie(clientCookieName, clientID, c.cookieMaxAge, "/", "", false, true)
	}
	return clientID
}

// Login handles password-based login
// @Summary Log in with email and password
// @Description Verifies credentials against the account store and issues a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.SessionResponse "Session established"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	identity, credential, err := c.sessions.LoginWithPassword(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(c.cookieName, credential, c.cookieMaxAge, "/", "", false, true)

	// Reconcile the cached client state with the fresh credential so a
	// subsequent sync sees the session immediately.
	clientID := c.ensureClientID(ctx)
	if _, err := c.sync.Sync(ctx.Request.Context(), clientID, credential); err != nil {
		c.logger.Warn().Err(err).Str("clientID", clientID).Msg("Failed to record client state after login")
	}

	ctx.JSON(http.StatusOK, dto.NewSessionResponse(identity))
}

// Logout clears the session cookie and the cached client state
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse "Logged out"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if clientID, err := ctx.Cookie(clientCookieName); err == nil && clientID != "" {
		if err := c.sync.Logout(ctx.Request.Context(), clientID); err != nil {
			c.logger.Warn().Err(err).Str("clientID", clientID).Msg("Failed to clear client state on logout")
		}
	}

	ctx.SetCookie(c.cookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Logged out"})
}

// GetCurrentSession validates the session cookie and returns the caller's identity
// @Summary Get the current session
// @Description Decodes and validates the session cookie, returning the resolved identity
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse "Session is valid"
// @Failure 400 {object} dto.ErrorResponse "Malformed session credential"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 403 {object} dto.ErrorResponse "Session rejected by identity provider"
// @Failure 404 {object} dto.ErrorResponse "User record not found"
// @Router /auth/me [get]
func (c *AuthController) GetCurrentSession(ctx *gin.Context) {
	credential, err := ctx.Cookie(c.cookieName)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrNoSession)
		return
	}

	identity, err := c.sessions.Validate(ctx.Request.Context(), credential)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSessionResponse(identity))
}

// SyncSession reconciles the client's cached state with its session cookie
// @Summary Synchronize client session state
// @Description Compares the cached client state with the session cookie and settles on logged-in or logged-out
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse "Settled state"
// @Router /auth/sync [post]
func (c *AuthController) SyncSession(ctx *gin.Context) {
	clientID := c.ensureClientID(ctx)

	// An absent cookie is a signal here, not an error
	credential, _ := ctx.Cookie(c.cookieName)

	identity, err := c.sync.Sync(ctx.Request.Context(), clientID, credential)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if identity == nil {
		ctx.SetCookie(c.cookieName, "", -1, "/", "", false, true)
	}
	ctx.JSON(http.StatusOK, dto.NewSessionResponse(identity))
}
