package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"regexp"
	"strings"

	_ "modernc.org/sqlite"
)

// DefaultTable is the table read when none is configured.
const DefaultTable = "titles"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteSource reads every row of one table from a SQLite database file.
type SQLiteSource struct {
	path  string
	table string
}

// NewSQLiteSource returns a reader for table in the database at path.
func NewSQLiteSource(path, table string) *SQLiteSource {
	table = strings.TrimSpace(table)
	if table == "" {
		table = DefaultTable
	}
	return &SQLiteSource{path: path, table: table}
}

func (s *SQLiteSource) Name() string { return s.path + "#" + s.table }

func (s *SQLiteSource) Read(ctx context.Context) (*RawTable, error) {
	if !tableNamePattern.MatchString(s.table) {
		return nil, fmt.Errorf("invalid table name %q", s.table)
	}
	// sql.Open would create an empty database for a missing path.
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("stat sqlite db: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		return nil, fmt.Errorf("apply pragma query_only: %w", err)
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s"`, s.table))
	if err != nil {
		return nil, fmt.Errorf("query table %s: %w", s.table, err)
	}
	defer rows.Close()

	headers, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	index := columnIndex(headers)
	table := &RawTable{Present: presentColumns(index)}

	values := make([]sql.NullString, len(headers))
	dest := make([]any, len(headers))
	for i := range values {
		dest[i] = &values[i]
	}
	cells := make([]string, len(headers))
	valid := func(i int) bool { return values[i].Valid }

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		for i := range values {
			cells[i] = values[i].String
		}
		table.Rows = append(table.Rows, rawFromCells(index, cells, valid))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return table, nil
}
