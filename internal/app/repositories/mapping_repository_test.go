package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/mentorlink/internal/app/models"
)

func makeEntries(start, count int) []models.MappingEntry {
	entries := make([]models.MappingEntry, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, models.MappingEntry{
			StudentID: fmt.Sprintf("stu_%04d", start+i),
			FacultyID: "fac_1",
		})
	}
	return entries
}

func TestCollectPagesStopsAtShortPage(t *testing.T) {
	pages := map[int][]models.MappingEntry{
		0:   makeEntries(0, mappingPageSize),
		100: makeEntries(100, mappingPageSize),
		200: makeEntries(200, mappingPageSize-1),
	}
	fetchCount := 0

	entries, err := collectPages(func(limit, offset int) ([]models.MappingEntry, error) {
		fetchCount++
		require.Equal(t, mappingPageSize, limit)
		page, ok := pages[offset]
		require.True(t, ok, "unexpected offset %d", offset)
		return page, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, fetchCount)
	require.Len(t, entries, 3*mappingPageSize-1)

	// Rows arrive concatenated in page order
	assert.Equal(t, "stu_0000", entries[0].StudentID)
	assert.Equal(t, "stu_0100", entries[mappingPageSize].StudentID)
	assert.Equal(t, fmt.Sprintf("stu_%04d", 3*mappingPageSize-2), entries[len(entries)-1].StudentID)
}

func TestCollectPagesEmptyFirstPage(t *testing.T) {
	fetchCount := 0

	entries, err := collectPages(func(limit, offset int) ([]models.MappingEntry, error) {
		fetchCount++
		return nil, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, fetchCount)
	assert.Empty(t, entries)
}

func TestCollectPagesExactPageBoundary(t *testing.T) {
	// A full page forces one more fetch; the empty follow-up terminates.
	fetchCount := 0

	entries, err := collectPages(func(limit, offset int) ([]models.MappingEntry, error) {
		fetchCount++
		if offset == 0 {
			return makeEntries(0, mappingPageSize), nil
		}
		return nil, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, fetchCount)
	assert.Len(t, entries, mappingPageSize)
}

func TestCollectPagesPropagatesFetchError(t *testing.T) {
	fetchErr := errors.New("store down")

	entries, err := collectPages(func(limit, offset int) ([]models.MappingEntry, error) {
		if offset == 0 {
			return makeEntries(0, mappingPageSize), nil
		}
		return nil, fetchErr
	})

	assert.Nil(t, entries)
	assert.ErrorIs(t, err, fetchErr)
}
