package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oguzk/mentorlink/internal/app/controllers"
	"github.com/oguzk/mentorlink/internal/app/models"
	"github.com/oguzk/mentorlink/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	menteeController *controllers.MenteeController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	// GetCurrentSession and SyncSession read the cookie themselves so they
	// can answer with session-specific error bodies instead of a generic
	// middleware abort.
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authController.GetCurrentSession)
		auth.POST("/sync", authController.SyncSession)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(sessionMiddleware.RequireSession())
	{
		// Faculty callers resolve their own roster
		authenticated.GET("/mentees", menteeController.GetMyMentees)

		// Privileged callers resolve anyone's roster
		privileged := authenticated.Group("")
		privileged.Use(sessionMiddleware.RoleRequired(
			models.TypeAdmin,
			models.TypeSuperAdmin,
			models.TypeDeveloper,
		))
		{
			privileged.GET("/faculty/:facultyId/mentees", menteeController.GetMenteesByFaculty)
		}
	}
}
