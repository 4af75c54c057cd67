package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/oguzk/mentorlink/internal/app/models"
	"github.com/oguzk/mentorlink/internal/pkg/apperrors"
)

// MappingStore is the mapping store scan surface the resolver needs
type MappingStore interface {
	ListByFacultyID(ctx context.Context, facultyID string) ([]models.MappingEntry, error)
	ListByNameID(ctx context.Context, nameID string) ([]models.MappingEntry, error)
}

// MenteeService resolves the set of students assigned to a faculty member
type MenteeService interface {
	// ResolveMentees returns the hydrated Student records mapped to the
	// faculty id, in first-discovery order, with at most one entry per
	// distinct student id. A mapping scan failure is fatal and yields an
	// empty result; an individual student fetch failure is skipped.
	ResolveMentees(ctx context.Context, facultyID string) ([]*models.Student, error)
}

// menteeServiceImpl implements the MenteeService interface
type menteeServiceImpl struct {
	mappingStore MappingStore
	facultyStore FacultyStore
	studentStore StudentStore
	logger       zerolog.Logger
}

// NewMenteeService creates a new mentee service instance
func NewMenteeService(
	mappingStore MappingStore,
	facultyStore FacultyStore,
	studentStore StudentStore,
	logger zerolog.Logger,
) MenteeService {
	return &menteeServiceImpl{
		mappingStore: mappingStore,
		facultyStore: facultyStore,
		studentStore: studentStore,
		logger:       logger,
	}
}

// ResolveMentees scans the mapping store by faculty id, falling back to the
// faculty's legacy name id only when the primary key yields zero rows, then
// hydrates each discovered student from the primary store one at a time.
func (s *menteeServiceImpl) ResolveMentees(ctx context.Context, facultyID string) ([]*models.Student, error) {
	if facultyID == "" {
		return nil, apperrors.ErrValidationFailed
	}

	// The faculty record is only needed for its legacy name id; a missing
	// or unreachable record just disables the fallback key.
	nameID := ""
	faculty, err := s.facultyStore.GetByID(ctx, facultyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Warn().Err(err).Str("facultyID", facultyID).Msg("Faculty lookup failed, resolving without fallback key")
		}
	} else {
		nameID = faculty.NameID
	}

	entries, err := s.mappingStore.ListByFacultyID(ctx, facultyID)
	if err != nil {
		s.logger.Error().Err(err).Str("facultyID", facultyID).Msg("Mapping scan failed")
		return nil, err
	}

	// Legacy rows are keyed by the faculty's name id. The fallback runs
	// only when the primary key matched nothing at all; a single primary
	// row suppresses it even if more rows exist under the name id.
	if len(entries) == 0 && nameID != "" {
		entries, err = s.mappingStore.ListByNameID(ctx, nameID)
		if err != nil {
			s.logger.Error().Err(err).Str("nameID", nameID).Msg("Fallback mapping scan failed")
			return nil, err
		}
	}

	// Distinct student ids in first-seen order
	seen := make(map[string]struct{}, len(entries))
	studentIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.StudentID]; ok {
			continue
		}
		seen[entry.StudentID] = struct{}{}
		studentIDs = append(studentIDs, entry.StudentID)
	}

	// Hydrate sequentially; cross-store references carry no integrity
	// guarantee, so a student id that no longer resolves is skipped.
	students := make([]*models.Student, 0, len(studentIDs))
	skipped := 0
	for _, studentID := range studentIDs {
		student, err := s.studentStore.GetByID(ctx, studentID)
		if err != nil {
			skipped++
			s.logger.Warn().Err(err).Str("studentID", studentID).Msg("Skipping unhydratable mentee")
			continue
		}
		students = append(students, student)
	}

	if skipped > 0 {
		s.logger.Warn().Err(apperrors.ErrPartialResolution).
			Str("facultyID", facultyID).
			Int("skipped", skipped).
			Int("resolved", len(students)).
			Msg("Mentee resolution completed partially")
	}

	return students, nil
}
