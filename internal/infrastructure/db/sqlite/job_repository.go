package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fairlink/careerfair-api/internal/core/domain"
	"github.com/fairlink/careerfair-api/internal/core/ports"
)

// JobRepository reads job opportunities. Postings are write-once through
// seeding or the companion admin tooling, so only the read side lives here.
type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(store *Store) *JobRepository {
	return &JobRepository{db: store.DB}
}

const jobListingQuery = `
	SELECT jo.id, jo.title, jo.description, jo.salaryMin, jo.salaryMax, jo.salaryCurrency,
	       jo.companyId, jo.careerFairId, jo.status, jo.createdAt,
	       c.name AS companyName, c.website AS companyWebsite, c.industry,
	       cf.title AS careerFairTitle, cf.status AS fairStatus
	FROM job_opportunities jo
	LEFT JOIN companies c ON jo.companyId = c.id
	LEFT JOIN career_fairs cf ON jo.careerFairId = cf.id`

func (r *JobRepository) ListActive(ctx context.Context) ([]ports.JobListing, error) {
	rows, err := r.db.QueryContext(ctx, jobListingQuery+`
		WHERE jo.status = 'active'
		ORDER BY jo.createdAt DESC`)
	if err != nil {
		return nil, fmt.Errorf("list job opportunities: %w", err)
	}
	defer rows.Close()

	var out []ports.JobListing
	for rows.Next() {
		item, err := scanJobListing(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, rows.Err()
}

func (r *JobRepository) FindActive(ctx context.Context, id int64) (*ports.JobListing, error) {
	row := r.db.QueryRowContext(ctx, jobListingQuery+`
		WHERE jo.id = ? AND jo.status = 'active'`, id)

	item, err := scanJobListing(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find job opportunity: %w", err)
	}
	return item, nil
}

func scanJobListing(scan func(...any) error) (*ports.JobListing, error) {
	var (
		item            ports.JobListing
		salaryMin       sql.NullInt64
		salaryMax       sql.NullInt64
		salaryCurrency  sql.NullString
		companyID       sql.NullInt64
		careerFairID    sql.NullInt64
		createdAt       sql.NullString
		companyName     sql.NullString
		companyWebsite  sql.NullString
		industry        sql.NullString
		careerFairTitle sql.NullString
		fairStatus      sql.NullString
	)
	err := scan(
		&item.ID, &item.Title, &item.Description, &salaryMin, &salaryMax, &salaryCurrency,
		&companyID, &careerFairID, &item.Status, &createdAt,
		&companyName, &companyWebsite, &industry,
		&careerFairTitle, &fairStatus,
	)
	if err != nil {
		return nil, err
	}
	item.SalaryMin = nullInt64(salaryMin)
	item.SalaryMax = nullInt64(salaryMax)
	item.SalaryCurrency = salaryCurrency.String
	item.CompanyID = nullInt64(companyID)
	item.CareerFairID = nullInt64(careerFairID)
	if createdAt.Valid {
		item.CreatedAt = parseTime(createdAt.String)
	}
	item.CompanyName = nullString(companyName)
	item.CompanyWebsite = nullString(companyWebsite)
	item.Industry = nullString(industry)
	item.CareerFairTitle = nullString(careerFairTitle)
	item.FairStatus = nullString(fairStatus)
	return &item, nil
}
