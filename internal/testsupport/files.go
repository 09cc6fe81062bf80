package testsupport

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteCatalogCSV writes content as titles.csv under a fresh temp directory
// and returns its path.
func WriteCatalogCSV(t testing.TB, content string) string {
	t.Helper()
	return WriteFile(t, filepath.Join(t.TempDir(), "titles.csv"), content)
}

// WriteSQLite creates a SQLite database at path holding one table with the
// given columns and rows. Nil row values are stored as NULL.
func WriteSQLite(t testing.TB, path, table string, columns []string, rows [][]any) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite db: %v", err)
	}
	defer db.Close()

	defs := make([]string, len(columns))
	marks := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = fmt.Sprintf("%q", col)
		marks[i] = "?"
	}
	if _, err := db.Exec(fmt.Sprintf("CREATE TABLE %q (%s)", table, strings.Join(defs, ", "))); err != nil {
		t.Fatalf("create table: %v", err)
	}
	insert := fmt.Sprintf("INSERT INTO %q VALUES (%s)", table, strings.Join(marks, ", "))
	for _, row := range rows {
		if _, err := db.Exec(insert, row...); err != nil {
			t.Fatalf("insert row %v: %v", row, err)
		}
	}
	return path
}
