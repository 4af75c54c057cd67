package dto

import "github.com/oguzk/mentorlink/internal/app/models"

// LoginRequest represents the payload for password-based login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@campus.edu"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// SessionResponse carries the outcome of a session validation or sync.
// Valid is false and User nil when the client is unauthenticated.
type SessionResponse struct {
	Valid bool             `json:"valid"`
	User  *models.Identity `json:"user,omitempty"`
}

// NewSessionResponse builds a SessionResponse from a resolved identity
func NewSessionResponse(identity *models.Identity) *SessionResponse {
	return &SessionResponse{
		Valid: identity != nil,
		User:  identity,
	}
}
