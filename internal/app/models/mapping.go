package models

// MappingEntry is a single student-to-mentor assignment row from the
// mapping store. The mapping store lives in a separate project with its own
// credentials; there is no foreign-key enforcement against the primary
// store, so either id may reference a record that no longer resolves.
type MappingEntry struct {
	StudentID string `json:"studentId" db:"student_id"`
	FacultyID string `json:"facultyId" db:"faculty_id"`
}
