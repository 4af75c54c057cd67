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

// mappingPageSize is the fixed page size for mapping store scans. Each page
// is one round trip to the store, so this is a latency/throughput trade-off,
// not a correctness parameter: enumeration ends at the first short page.
const mappingPageSize = 100

// MappingRepository scans the student-to-mentor assignment rows in the
// mapping store. The store lives in a separate project with its own
// credentials, so the repository runs on its own pool and only ever reads.
type MappingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMappingRepository creates a new MappingRepository
func NewMappingRepository(db *pgxpool.Pool) *MappingRepository {
	return &MappingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// pageFetch returns one page of mapping rows at the given offset
type pageFetch func(limit, offset int) ([]models.MappingEntry, error)

// collectPages enumerates all rows by fetching fixed-size pages from offset
// zero until a page comes back shorter than the page size. The enumeration
// is complete and order-stable but not restartable mid-scan; callers
// re-invoke to rescan.
func collectPages(fetch pageFetch) ([]models.MappingEntry, error) {
	var entries []models.MappingEntry

	for offset := 0; ; offset += mappingPageSize {
		page, err := fetch(mappingPageSize, offset)
		if err != nil {
			return nil, err
		}

		entries = append(entries, page...)

		if len(page) < mappingPageSize {
			return entries, nil
		}
	}
}

// page fetches one page of rows where column equals value
func (r *MappingRepository) page(ctx context.Context, column, value string, limit, offset int) ([]models.MappingEntry, error) {
	sql, args, err := r.sb.Select("student_id", "faculty_id").
		From("mentor_mappings").
		Where(squirrel.Eq{column: value}).
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building mapping page SQL")
		return nil, fmt.Errorf("failed to build mapping page query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUnavailable(err) {
			logger.Error().Err(err).Str(column, value).Msg("Mapping store unreachable")
		} else {
			logger.Error().Err(err).Str(column, value).Msg("Error querying mapping page")
		}
		return nil, fmt.Errorf("%w: scanning mappings: %v", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var entries []models.MappingEntry
	for rows.Next() {
		var entry models.MappingEntry
		if err := rows.Scan(&entry.StudentID, &entry.FacultyID); err != nil {
			return nil, fmt.Errorf("%w: scanning mapping row: %v", apperrors.ErrStoreUnavailable, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading mapping rows: %v", apperrors.ErrStoreUnavailable, err)
	}

	return entries, nil
}

// listByColumn enumerates every row whose column equals value
func (r *MappingRepository) listByColumn(ctx context.Context, column, value string) ([]models.MappingEntry, error) {
	return collectPages(func(limit, offset int) ([]models.MappingEntry, error) {
		return r.page(ctx, column, value, limit, offset)
	})
}

// ListByFacultyID enumerates all mapping rows assigned to a faculty id
func (r *MappingRepository) ListByFacultyID(ctx context.Context, facultyID string) ([]models.MappingEntry, error) {
	return r.listByColumn(ctx, "faculty_id", facultyID)
}

// ListByNameID enumerates all legacy mapping rows keyed by a faculty name id
func (r *MappingRepository) ListByNameID(ctx context.Context, nameID string) ([]models.MappingEntry, error) {
	return r.listByColumn(ctx, "faculty_id", nameID)
}

// ListByStudentID enumerates all mapping rows for a student id
func (r *MappingRepository) ListByStudentID(ctx context.Context, studentID string) ([]models.MappingEntry, error) {
	return r.listByColumn(ctx, "student_id", studentID)
}
