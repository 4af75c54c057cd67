package dto

import "github.com/oguzk/mentorlink/internal/app/models"

// MenteeListResponse represents the resolved mentee roster of a faculty member
type MenteeListResponse struct {
	Mentees []*models.Student `json:"mentees"`
	Count   int               `json:"count"`
}

// NewMenteeListResponse builds a MenteeListResponse, normalizing a nil
// slice to an empty one so the JSON body always carries an array.
func NewMenteeListResponse(mentees []*models.Student) *MenteeListResponse {
	if mentees == nil {
		mentees = []*models.Student{}
	}
	return &MenteeListResponse{
		Mentees: mentees,
		Count:   len(mentees),
	}
}
