package seeder

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"job-board/internal/database"
)

var (
	ErrNilDB          = errors.New("nil db")
	ErrSchemaMismatch = errors.New("schema mismatch")
)

const columnsQuery = `SELECT column_name FROM information_schema.columns
	WHERE table_schema = current_schema() AND table_name = $1`

// EnsureTableColumns fails with ErrSchemaMismatch, naming every missing
// column, when table lacks any of columns. Seeders call it before inserting
// so an unmigrated database reports which migration is missing.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return ErrNilDB
	}
	if strings.TrimSpace(table) == "" {
		return errors.New("ensure columns: empty table name")
	}

	rows, err := db.Query(ctx, columnsQuery, table)
	if err != nil {
		return fmt.Errorf("list columns of %s: %w", table, err)
	}
	defer rows.Close()

	existing := make(map[string]struct{})
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return fmt.Errorf("scan column of %s: %w", table, err)
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list columns of %s: %w", table, err)
	}

	var missing []string
	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			missing = append(missing, table+"."+col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: missing %s (run `migrate up`)", ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return nil
}
