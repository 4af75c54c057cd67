package repositories

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableColumns extracts the column names declared by the CREATE TABLE
// statement for the given table in the primary store migration.
func tableColumns(t *testing.T, table string) map[string]bool {
	t.Helper()

	path := filepath.Join("..", "..", "..", "migrations", "primary", "001_init.sql")
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	re := regexp.MustCompile(`(?is)CREATE TABLE IF NOT EXISTS ` + table + `\s*\((.*?)\);`)
	match := re.FindStringSubmatch(string(content))
	require.Lenf(t, match, 2, "table %s not found in migration", table)

	columns := make(map[string]bool)
	for _, line := range strings.Split(match[1], "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.EqualFold(fields[0], "CONSTRAINT") {
			continue
		}
		columns[strings.ToLower(fields[0])] = true
	}
	return columns
}

// Every column a repository selects or inserts must exist in the shipped
// schema; a drifted name surfaces only at runtime as a store failure.
func TestRepositoryColumnsMatchMigration(t *testing.T) {
	tests := []struct {
		table   string
		columns []string
	}{
		{"accounts", accountColumns},
		{"faculty", facultyColumns},
		{"students", studentColumns},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			declared := tableColumns(t, tt.table)
			for _, column := range tt.columns {
				assert.Truef(t, declared[column], "column %s is not declared for table %s", column, tt.table)
			}
		})
	}
}
