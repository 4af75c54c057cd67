package models

// Faculty defines the faculty record held in the primary store.
// NameID is a legacy alternate key: older mapping rows were keyed by it
// instead of FacultyID, so it serves as the fallback lookup key when a
// FacultyID yields no mapping rows.
type Faculty struct {
	FacultyID     string   `json:"facultyId" db:"faculty_id" example:"fac_1a2b3c"`
	NameID        string   `json:"nameId" db:"name_id" example:"ademir"`
	Name          string   `json:"name" db:"name" example:"Ayse Demir"`
	Email         string   `json:"email" db:"email" example:"ayse.demir@campus.edu"`
	Designation   string   `json:"designation" db:"designation" example:"Associate Professor"`
	School        string   `json:"school" db:"school" example:"School of Engineering"`
	Department    string   `json:"department" db:"department" example:"Computer Science"`
	IsHOD         bool     `json:"isHOD" db:"is_hod" example:"false"`
	Seating       *string  `json:"seating,omitempty" db:"seating"`               // Office/seating location (nullable)
	FreeTimeSlots []string `json:"freeTimeSlots,omitempty" db:"free_time_slots"` // Advertised availability
}
