// Package migrations holds the ordered schema steps for the career-fair
// store. Base DDL ships as embedded SQL; steps that must inspect the live
// schema first (additive columns, the NOT-NULL relaxation rebuild) are Go
// migrations registered with goose. Every step is safe to apply to a brand
// new file and to a database produced by any earlier schema version; the
// goose version table records what has already run.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/rs/zerolog"
)

//go:embed *.sql
var Embed embed.FS

// Logger receives messages from data-affecting steps (row drops during the
// resumes rebuild). Replaced at startup by the store; defaults to a no-op so
// migrations stay usable from tests without logger setup.
var Logger = zerolog.Nop()

// columnExists reports whether table has a column with the given name,
// using live PRAGMA metadata rather than error-text inspection.
func columnExists(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	_, found, err := columnInfo(ctx, tx, table, column)
	return found, err
}

// columnNotNull reports whether the column exists and carries a NOT NULL
// constraint.
func columnNotNull(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	notNull, found, err := columnInfo(ctx, tx, table, column)
	return found && notNull, err
}

func columnInfo(ctx context.Context, tx *sql.Tx, table, column string) (notNull, found bool, err error) {
	rows, err := tx.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, false, fmt.Errorf("inspect %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name, typ  string
			nn         int
			dflt       sql.NullString
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &typ, &nn, &dflt, &primaryKey); err != nil {
			return false, false, fmt.Errorf("inspect %s: %w", table, err)
		}
		if name == column {
			return nn == 1, true, nil
		}
	}
	return false, false, rows.Err()
}
