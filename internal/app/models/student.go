package models

// Student defines the student record held in the primary store
type Student struct {
	StudentID  string  `json:"studentId" db:"student_id" example:"stu_7d8e9f"`
	Name       string  `json:"name" db:"name" example:"Mehmet Kaya"`
	Email      string  `json:"email" db:"email" example:"mehmet.kaya@campus.edu"`
	RollNo     string  `json:"rollNo" db:"roll_no" example:"21CS1042"`
	School     string  `json:"school" db:"school" example:"School of Engineering"`
	Department string  `json:"department" db:"department" example:"Computer Science"`
	MentorID   string  `json:"mentorId" db:"mentor_id" example:"fac_1a2b3c"`
	ImageID    *string `json:"imageId,omitempty" db:"image_id"` // Profile image reference (nullable)
}
