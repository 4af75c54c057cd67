package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzk/mentorlink/internal/pkg/apperrors"
)

// ErrNotFound is the shared missing-record error for all repositories
var ErrNotFound = apperrors.ErrResourceNotFound

// Record-specific aliases
var (
	ErrFacultyNotFound = ErrNotFound
	ErrStudentNotFound = ErrNotFound
	ErrAccountNotFound = ErrNotFound
)

// ErrAccountExists is returned when creating an account whose email is taken
var ErrAccountExists = errors.New("account with this email already exists")

// Repositories holds all the repository instances. The mapping repository
// runs on its own pool because the mapping store is a separate project with
// separate credentials.
type Repositories struct {
	FacultyRepository *FacultyRepository
	StudentRepository *StudentRepository
	AccountRepository *AccountRepository
	MappingRepository *MappingRepository
}

// NewRepositories initializes all repositories
func NewRepositories(primary *pgxpool.Pool, mapping *pgxpool.Pool) *Repositories {
	return &Repositories{
		FacultyRepository: NewFacultyRepository(primary),
		StudentRepository: NewStudentRepository(primary),
		AccountRepository: NewAccountRepository(primary),
		MappingRepository: NewMappingRepository(mapping),
	}
}
