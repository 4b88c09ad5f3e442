package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cs-quiz/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Oracle errors meaning the object a statement creates already exists.
var alreadyExistsCodes = []string{
	"ORA-00955", // name is already used by an existing object
	"ORA-01408", // such column list already indexed
	"ORA-02260", // table can have only one primary key
	"ORA-02261", // such unique or primary key already exists
	"ORA-02275", // such a referential constraint already exists
}

// RunMigrations executes every *.up.sql file in dir in name order. Statements
// creating objects that already exist are skipped, so the run is idempotent.
func RunMigrations(ctx context.Context, db sqlx.ExecerContext, dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		if !file.IsDir() && strings.HasSuffix(file.Name(), ".up.sql") {
			names = append(names, file.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		for i, stmt := range splitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				if isAlreadyExists(err) {
					logger.Get().Info("Skipping statement, object already exists",
						zap.String("file", name), zap.Int("statement", i+1))
					continue
				}
				return fmt.Errorf("could not execute migration %s (statement %d): %w", name, i+1, err)
			}
		}

		logger.Get().Info("Executed migration", zap.String("file", name))
	}

	logger.Get().Info("Migrations completed successfully", zap.Int("files", len(names)))
	return nil
}

// splitStatements breaks a script on semicolons ending a line. The Oracle
// driver rejects a trailing semicolon, so it is dropped.
func splitStatements(script string) []string {
	var (
		stmts   []string
		current strings.Builder
	)
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			stmts = append(stmts, s)
		}
		current.Reset()
	}

	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if strings.HasSuffix(trimmed, ";") {
			current.WriteString(strings.TrimSuffix(strings.TrimRight(line, " \t\r"), ";"))
			flush()
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	flush()
	return stmts
}

func isAlreadyExists(err error) bool {
	msg := err.Error()
	for _, code := range alreadyExistsCodes {
		if strings.Contains(msg, code) {
			return true
		}
	}
	return false
}
