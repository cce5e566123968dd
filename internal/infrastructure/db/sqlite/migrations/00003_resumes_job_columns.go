package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upResumesJobColumns, downResumesJobColumns)
}

// Adds the job-targeted submission columns to resume tables created before
// job opportunities existed.
func upResumesJobColumns(ctx context.Context, tx *sql.Tx) error {
	exists, err := columnExists(ctx, tx, "resumes", "jobOpportunityId")
	if err != nil {
		return err
	}
	if !exists {
		if _, err := tx.ExecContext(ctx, `ALTER TABLE resumes ADD COLUMN jobOpportunityId INTEGER`); err != nil {
			return err
		}
	}

	exists, err = columnExists(ctx, tx, "resumes", "coverLetter")
	if err != nil {
		return err
	}
	if !exists {
		if _, err := tx.ExecContext(ctx, `ALTER TABLE resumes ADD COLUMN coverLetter TEXT`); err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_resumes_job_opportunity ON resumes(jobOpportunityId)`)
	return err
}

func downResumesJobColumns(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DROP INDEX IF EXISTS idx_resumes_job_opportunity`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `ALTER TABLE resumes DROP COLUMN coverLetter`); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `ALTER TABLE resumes DROP COLUMN jobOpportunityId`)
	return err
}
