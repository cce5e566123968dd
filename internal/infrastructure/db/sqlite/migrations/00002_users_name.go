package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upUsersName, downUsersName)
}

// Legacy databases predate the users.name column; fresh ones get it from the
// base schema, so this step only fires when the column is really absent.
func upUsersName(ctx context.Context, tx *sql.Tx) error {
	exists, err := columnExists(ctx, tx, "users", "name")
	if err != nil || exists {
		return err
	}
	_, err = tx.ExecContext(ctx, `ALTER TABLE users ADD COLUMN name TEXT`)
	return err
}

func downUsersName(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `ALTER TABLE users DROP COLUMN name`)
	return err
}
