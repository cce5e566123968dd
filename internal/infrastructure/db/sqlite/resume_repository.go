package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fairlink/careerfair-api/internal/core/domain"
	"github.com/fairlink/careerfair-api/internal/core/ports"
)

// ResumeRepository persists resumes in SQLite.
type ResumeRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewResumeRepository(store *Store, logger zerolog.Logger) *ResumeRepository {
	return &ResumeRepository{db: store.DB, logger: logger}
}

// Create inserts a resume row. Booth submissions use the column set shared by
// every schema version. Job submissions need the jobOpportunityId and
// coverLetter columns; when a probe shows the live schema predates them, the
// row is inserted with the legacy columns and the job fields are patched in
// afterwards on a best-effort basis.
func (r *ResumeRepository) Create(ctx context.Context, res *domain.Resume) (int64, error) {
	if res.JobOpportunityID == nil {
		return r.createLegacy(ctx, res)
	}

	probe, err := r.db.QueryContext(ctx, `SELECT jobOpportunityId, coverLetter FROM resumes LIMIT 1`)
	if err == nil {
		probe.Close()
	} else {
		r.logger.Warn().Err(err).Msg("resumes table missing job columns, using legacy insert")
		id, err := r.createLegacy(ctx, res)
		if err != nil {
			return 0, err
		}
		_, err = r.db.ExecContext(ctx,
			`UPDATE resumes SET jobOpportunityId = ?, coverLetter = ? WHERE id = ?`,
			res.JobOpportunityID, res.CoverLetter, id)
		if err != nil {
			r.logger.Warn().Err(err).Int64("resume_id", id).
				Msg("could not attach job fields to legacy resume row")
		}
		return id, nil
	}

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO resumes (userId, companyBoothId, jobOpportunityId, fileName, filePath, fileSize, coverLetter, status, submittedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.UserID, res.CompanyBoothID, res.JobOpportunityID,
		res.FileName, res.FilePath, res.FileSize, res.CoverLetter,
		res.Status, formatTime(res.SubmittedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("insert resume: %w", err)
	}
	return result.LastInsertId()
}

func (r *ResumeRepository) createLegacy(ctx context.Context, res *domain.Resume) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO resumes (userId, companyBoothId, fileName, filePath, fileSize, status, submittedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		res.UserID, res.CompanyBoothID,
		res.FileName, res.FilePath, res.FileSize,
		res.Status, formatTime(res.SubmittedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("insert resume: %w", err)
	}
	return result.LastInsertId()
}

func (r *ResumeRepository) Find(ctx context.Context, id int64) (*domain.Resume, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, userId, companyBoothId, jobOpportunityId, fileName, filePath, fileSize, coverLetter, status, submittedAt
		FROM resumes WHERE id = ?`, id)

	res, err := scanResume(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrResumeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find resume: %w", err)
	}
	return res, nil
}

func (r *ResumeRepository) UpdateStatus(ctx context.Context, id int64, status domain.ResumeStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE resumes SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("update resume status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrResumeNotFound
	}
	return nil
}

// ListByUser returns a job seeker's submissions enriched with whichever
// parent context each row has: booth, company and fair for booth submissions,
// posting title for job submissions.
func (r *ResumeRepository) ListByUser(ctx context.Context, userID int64) ([]ports.SubmittedResume, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.userId, r.companyBoothId, r.jobOpportunityId, r.fileName, r.filePath, r.fileSize, r.coverLetter, r.status, r.submittedAt,
		       cb.boothNumber,
		       c.name AS companyName,
		       cf.title AS fairTitle,
		       jo.title AS jobTitle
		FROM resumes r
		LEFT JOIN company_booths cb ON r.companyBoothId = cb.id
		LEFT JOIN companies c ON cb.companyId = c.id
		LEFT JOIN career_fairs cf ON cb.careerFairId = cf.id
		LEFT JOIN job_opportunities jo ON r.jobOpportunityId = jo.id
		WHERE r.userId = ?
		ORDER BY r.submittedAt DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list resumes by user: %w", err)
	}
	defer rows.Close()

	var out []ports.SubmittedResume
	for rows.Next() {
		var (
			item        ports.SubmittedResume
			boothID     sql.NullInt64
			jobID       sql.NullInt64
			fileSize    sql.NullInt64
			coverLetter sql.NullString
			submittedAt sql.NullString
			boothNumber sql.NullString
			companyName sql.NullString
			fairTitle   sql.NullString
			jobTitle    sql.NullString
		)
		err := rows.Scan(
			&item.ID, &item.UserID, &boothID, &jobID,
			&item.FileName, &item.FilePath, &fileSize, &coverLetter,
			&item.Status, &submittedAt,
			&boothNumber, &companyName, &fairTitle, &jobTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("scan resume: %w", err)
		}
		fillResumeNulls(&item.Resume, boothID, jobID, fileSize, coverLetter, submittedAt)
		item.BoothNumber = nullString(boothNumber)
		item.CompanyName = nullString(companyName)
		item.FairTitle = nullString(fairTitle)
		item.JobTitle = nullString(jobTitle)
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *ResumeRepository) ListByBooth(ctx context.Context, boothID int64) ([]ports.ReceivedResume, error) {
	return r.listReceived(ctx, `WHERE r.companyBoothId = ?`, boothID)
}

func (r *ResumeRepository) ListByJob(ctx context.Context, jobID int64) ([]ports.ReceivedResume, error) {
	return r.listReceived(ctx, `WHERE r.jobOpportunityId = ?`, jobID)
}

func (r *ResumeRepository) listReceived(ctx context.Context, where string, arg int64) ([]ports.ReceivedResume, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.userId, r.companyBoothId, r.jobOpportunityId, r.fileName, r.filePath, r.fileSize, r.coverLetter, r.status, r.submittedAt,
		       u.email, u.name AS userName
		FROM resumes r
		JOIN users u ON r.userId = u.id
		`+where+`
		ORDER BY r.submittedAt DESC`, arg)
	if err != nil {
		return nil, fmt.Errorf("list received resumes: %w", err)
	}
	defer rows.Close()

	var out []ports.ReceivedResume
	for rows.Next() {
		var (
			item        ports.ReceivedResume
			boothID     sql.NullInt64
			jobID       sql.NullInt64
			fileSize    sql.NullInt64
			coverLetter sql.NullString
			submittedAt sql.NullString
			userName    sql.NullString
		)
		err := rows.Scan(
			&item.ID, &item.UserID, &boothID, &jobID,
			&item.FileName, &item.FilePath, &fileSize, &coverLetter,
			&item.Status, &submittedAt,
			&item.Email, &userName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan resume: %w", err)
		}
		fillResumeNulls(&item.Resume, boothID, jobID, fileSize, coverLetter, submittedAt)
		item.UserName = nullString(userName)
		out = append(out, item)
	}
	return out, rows.Err()
}

// BoothOwner resolves the account owning the company behind a booth. Targets
// without a resolvable owner report 0.
func (r *ResumeRepository) BoothOwner(ctx context.Context, boothID int64) (int64, error) {
	var owner sql.NullInt64
	err := r.db.QueryRowContext(ctx, `
		SELECT c.userId
		FROM company_booths cb
		JOIN companies c ON cb.companyId = c.id
		WHERE cb.id = ?`, boothID).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("resolve booth owner: %w", err)
	}
	return owner.Int64, nil
}

// JobOwner resolves the account owning the company behind a posting. Seeded
// postings have no company and report 0.
func (r *ResumeRepository) JobOwner(ctx context.Context, jobID int64) (int64, error) {
	var owner sql.NullInt64
	err := r.db.QueryRowContext(ctx, `
		SELECT c.userId
		FROM job_opportunities jo
		JOIN companies c ON jo.companyId = c.id
		WHERE jo.id = ?`, jobID).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("resolve job owner: %w", err)
	}
	return owner.Int64, nil
}

func scanResume(row *sql.Row) (*domain.Resume, error) {
	var (
		res         domain.Resume
		boothID     sql.NullInt64
		jobID       sql.NullInt64
		fileSize    sql.NullInt64
		coverLetter sql.NullString
		submittedAt sql.NullString
	)
	err := row.Scan(
		&res.ID, &res.UserID, &boothID, &jobID,
		&res.FileName, &res.FilePath, &fileSize, &coverLetter,
		&res.Status, &submittedAt,
	)
	if err != nil {
		return nil, err
	}
	fillResumeNulls(&res, boothID, jobID, fileSize, coverLetter, submittedAt)
	return &res, nil
}

func fillResumeNulls(res *domain.Resume, boothID, jobID, fileSize sql.NullInt64, coverLetter, submittedAt sql.NullString) {
	res.CompanyBoothID = nullInt64(boothID)
	res.JobOpportunityID = nullInt64(jobID)
	res.FileSize = fileSize.Int64
	res.CoverLetter = nullString(coverLetter)
	if submittedAt.Valid {
		res.SubmittedAt = parseTime(submittedAt.String)
	}
}

func nullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
