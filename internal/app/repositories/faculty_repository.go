package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzk/mentorlink/internal/app/models"
	"github.com/oguzk/mentorlink/internal/pkg/apperrors"
	"github.com/oguzk/mentorlink/internal/pkg/dberrors"
	"github.com/oguzk/mentorlink/internal/pkg/logger"
)

// FacultyRepository handles faculty reads from the primary store
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var facultyColumns = []string{
	"faculty_id", "name_id", "name", "email", "designation",
	"school", "department", "is_hod", "seating", "free_time_slots",
}

func (r *FacultyRepository) scanFaculty(row squirrel.RowScanner) (*models.Faculty, error) {
	var faculty models.Faculty
	err := row.Scan(
		&faculty.FacultyID, &faculty.NameID, &faculty.Name, &faculty.Email,
		&faculty.Designation, &faculty.School, &faculty.Department,
		&faculty.IsHOD, &faculty.Seating, &faculty.FreeTimeSlots)
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

// GetByID retrieves a faculty record by its document id
func (r *FacultyRepository) GetByID(ctx context.Context, facultyID string) (*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get faculty by ID SQL")
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty, err := r.scanFaculty(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrFacultyNotFound
		}
		logger.Error().Err(err).Str("facultyID", facultyID).Msg("Error retrieving faculty by ID")
		return nil, fmt.Errorf("%w: retrieving faculty: %v", apperrors.ErrStoreUnavailable, err)
	}

	return faculty, nil
}

// GetByEmail retrieves a faculty record by email
func (r *FacultyRepository) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get faculty by email SQL")
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty, err := r.scanFaculty(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrFacultyNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error retrieving faculty by email")
		return nil, fmt.Errorf("%w: retrieving faculty: %v", apperrors.ErrStoreUnavailable, err)
	}

	return faculty, nil
}
