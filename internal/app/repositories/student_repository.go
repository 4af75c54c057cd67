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

// StudentRepository handles student reads from the primary store
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var studentColumns = []string{
	"student_id", "name", "email", "roll_no", "school",
	"department", "mentor_id", "image_id",
}

func (r *StudentRepository) scanStudent(row squirrel.RowScanner) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.StudentID, &student.Name, &student.Email, &student.RollNo,
		&student.School, &student.Department, &student.MentorID, &student.ImageID)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByID retrieves a student record by its document id
func (r *StudentRepository) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := r.scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error retrieving student by ID")
		return nil, fmt.Errorf("%w: retrieving student: %v", apperrors.ErrStoreUnavailable, err)
	}

	return student, nil
}

// GetByEmail retrieves a student record by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by email SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := r.scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error retrieving student by email")
		return nil, fmt.Errorf("%w: retrieving student: %v", apperrors.ErrStoreUnavailable, err)
	}

	return student, nil
}
