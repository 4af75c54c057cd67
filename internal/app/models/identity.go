package models

// UserType defines the role classification of an authenticated user
type UserType string

const (
	TypeAdmin      UserType = "Admin"
	TypeFaculty    UserType = "Faculty"
	TypeStudent    UserType = "Student"
	TypeSuperAdmin UserType = "SuperAdmin"
	TypeDeveloper  UserType = "Developer"
)

// IsValid reports whether the type names a known role
func (t UserType) IsValid() bool {
	switch t {
	case TypeAdmin, TypeFaculty, TypeStudent, TypeSuperAdmin, TypeDeveloper:
		return true
	}
	return false
}

// HasRecordStore reports whether identities of this type are backed by a
// record in the primary store. Admin, SuperAdmin and Developer identities
// carry no Faculty/Student record and skip record hydration entirely.
func (t UserType) HasRecordStore() bool {
	return t == TypeFaculty || t == TypeStudent
}

// Identity is the resolved, typed representation of an authenticated user.
// Exactly one of FacultyData/StudentData is populated, determined by Type.
// An Identity is owned by the request that produced it and is never shared
// across requests.
type Identity struct {
	UserID      string   `json:"userId" example:"usr_9f2c1b"`
	Name        string   `json:"name" example:"Ayse Demir"`
	Email       string   `json:"email" example:"ayse.demir@campus.edu"`
	Type        UserType `json:"type" example:"Faculty"`
	IsHOD       bool     `json:"isHOD" example:"false"`
	Labels      []string `json:"labels"`
	FacultyData *Faculty `json:"facultyData,omitempty"`
	StudentData *Student `json:"studentData,omitempty"`
}
