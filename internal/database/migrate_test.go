package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMigration(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestSplitStatements(t *testing.T) {
	script := `-- topics
CREATE TABLE a (
    id NUMBER
);

CREATE INDEX idx_a ON a (id);
CREATE TABLE b (id NUMBER)`

	stmts := splitStatements(script)

	require.Len(t, stmts, 3)
	assert.Equal(t, "CREATE TABLE a (\n    id NUMBER\n)", stmts[0])
	assert.Equal(t, "CREATE INDEX idx_a ON a (id)", stmts[1])
	assert.Equal(t, "CREATE TABLE b (id NUMBER)", stmts[2])
}

func TestRunMigrations(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "000002_second.up.sql", "CREATE TABLE b (id NUMBER);\nCREATE INDEX idx_b ON b (id);\n")
	writeMigration(t, dir, "000001_first.up.sql", "CREATE TABLE a (id NUMBER);\n")
	writeMigration(t, dir, "000001_first.down.sql", "DROP TABLE a;\n")
	writeMigration(t, dir, "README.md", "not a migration")

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE a (id NUMBER)").
		WillReturnError(errors.New("ORA-00955: name is already used by an existing object"))
	mock.ExpectExec("CREATE TABLE b (id NUMBER)").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX idx_b ON b (id)").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, RunMigrations(context.Background(), db, dir))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_StopsOnError(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "000001_first.up.sql", "CREATE TABLE a (id NUMBER);\n")
	writeMigration(t, dir, "000002_second.up.sql", "CREATE TABLE b (id NUMBER);\n")

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE a (id NUMBER)").
		WillReturnError(errors.New("ORA-00942: table or view does not exist"))

	err = RunMigrations(context.Background(), db, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "000001_first.up.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_MissingDir(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.Error(t, RunMigrations(context.Background(), db, filepath.Join(t.TempDir(), "missing")))
}

func TestProjectMigrationsParse(t *testing.T) {
	entries, err := os.ReadDir("../../database/migrations")
	require.NoError(t, err)

	total := 0
	for _, e := range entries {
		content, err := os.ReadFile(filepath.Join("../../database/migrations", e.Name()))
		require.NoError(t, err)
		stmts := splitStatements(string(content))
		assert.NotEmpty(t, stmts, e.Name())
		for _, s := range stmts {
			assert.NotContains(t, s, ";", e.Name())
		}
		total += len(stmts)
	}
	assert.Equal(t, 5, total)
}
