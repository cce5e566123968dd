package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upResumesRelaxBooth, downResumesRelaxBooth)
}

const rebuiltResumesTable = `
CREATE TABLE resumes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    userId INTEGER NOT NULL,
    companyBoothId INTEGER,
    jobOpportunityId INTEGER,
    fileName TEXT NOT NULL,
    filePath TEXT NOT NULL,
    fileSize INTEGER,
    coverLetter TEXT,
    status TEXT DEFAULT 'pending',
    submittedAt DATETIME DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (userId) REFERENCES users(id),
    FOREIGN KEY (companyBoothId) REFERENCES company_booths(id),
    FOREIGN KEY (jobOpportunityId) REFERENCES job_opportunities(id),
    CHECK (companyBoothId IS NOT NULL OR jobOpportunityId IS NOT NULL)
)`

// The first schema version declared companyBoothId NOT NULL, which makes
// job-targeted submissions impossible. SQLite cannot relax nullability in
// place, so when live metadata still shows the old constraint the table is
// rebuilt: rows are parked in a holding table, the table is recreated with a
// nullable booth column and the two-parent CHECK, and every row that still
// satisfies the old mandatory column is restored with its original values.
// Rows without a booth parent cannot exist under either constraint set and
// are dropped deliberately.
func upResumesRelaxBooth(ctx context.Context, tx *sql.Tx) error {
	notNull, err := columnNotNull(ctx, tx, "resumes", "companyBoothId")
	if err != nil || !notNull {
		return err
	}

	var dropped int64
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM resumes WHERE companyBoothId IS NULL`).Scan(&dropped); err != nil {
		return err
	}

	steps := []string{
		`CREATE TABLE resumes_backup AS SELECT * FROM resumes`,
		`DROP TABLE resumes`,
		rebuiltResumesTable,
		`INSERT INTO resumes (id, userId, companyBoothId, fileName, filePath, fileSize, status, submittedAt)
		 SELECT id, userId, companyBoothId, fileName, filePath, fileSize, status, submittedAt
		 FROM resumes_backup
		 WHERE companyBoothId IS NOT NULL`,
		`DROP TABLE resumes_backup`,
		`CREATE INDEX IF NOT EXISTS idx_resumes_job_opportunity ON resumes(jobOpportunityId)`,
	}
	for _, stmt := range steps {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	Logger.Warn().
		Int64("rows_dropped", dropped).
		Msg("rebuilt resumes table with nullable companyBoothId")
	return nil
}

// The relaxation is one-directional; reverting to a mandatory booth column
// would discard every job-targeted submission.
func downResumesRelaxBooth(ctx context.Context, tx *sql.Tx) error {
	return nil
}
