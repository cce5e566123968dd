package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fairlink/careerfair-api/internal/core/domain"
	"github.com/fairlink/careerfair-api/internal/core/ports"
)

// RegistrationRepository persists career-fair registrations.
type RegistrationRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewRegistrationRepository(store *Store, logger zerolog.Logger) *RegistrationRepository {
	return &RegistrationRepository{db: store.DB, logger: logger}
}

// Create registers a user for a fair. The duplicate check runs before the
// insert so the caller sees domain.ErrAlreadyRegistered rather than a raw
// unique-constraint failure; the UNIQUE index still backstops races.
func (r *RegistrationRepository) Create(ctx context.Context, userID, fairID int64) (int64, error) {
	var existing int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM registrations WHERE userId = ? AND careerFairId = ?`,
		userID, fairID).Scan(&existing)
	if err == nil {
		return 0, domain.ErrAlreadyRegistered
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("check registration: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO registrations (userId, careerFairId) VALUES (?, ?)`,
		userID, fairID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrAlreadyRegistered
		}
		return 0, fmt.Errorf("insert registration: %w", err)
	}
	return result.LastInsertId()
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID int64) ([]ports.UserRegistration, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT reg.id, reg.userId, reg.careerFairId, reg.registeredAt,
		       cf.title, cf.startDate, cf.endDate, cf.status
		FROM registrations reg
		JOIN career_fairs cf ON reg.careerFairId = cf.id
		WHERE reg.userId = ?
		ORDER BY reg.registeredAt DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by user: %w", err)
	}
	defer rows.Close()

	var out []ports.UserRegistration
	for rows.Next() {
		var (
			item         ports.UserRegistration
			registeredAt sql.NullString
			startDate    string
			endDate      string
		)
		err := rows.Scan(
			&item.ID, &item.UserID, &item.CareerFairID, &registeredAt,
			&item.Title, &startDate, &endDate, &item.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		if registeredAt.Valid {
			item.RegisteredAt = parseTime(registeredAt.String)
		}
		item.StartDate = parseTime(startDate)
		item.EndDate = parseTime(endDate)
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *RegistrationRepository) ListByFair(ctx context.Context, fairID int64) ([]ports.FairRegistration, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT reg.id, reg.userId, reg.careerFairId, reg.registeredAt,
		       u.email, u.name AS userName
		FROM registrations reg
		JOIN users u ON reg.userId = u.id
		WHERE reg.careerFairId = ?
		ORDER BY reg.registeredAt DESC`, fairID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by fair: %w", err)
	}
	defer rows.Close()

	var out []ports.FairRegistration
	for rows.Next() {
		var (
			item         ports.FairRegistration
			registeredAt sql.NullString
			userName     sql.NullString
		)
		err := rows.Scan(
			&item.ID, &item.UserID, &item.CareerFairID, &registeredAt,
			&item.Email, &userName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		if registeredAt.Valid {
			item.RegisteredAt = parseTime(registeredAt.String)
		}
		item.UserName = nullString(userName)
		out = append(out, item)
	}
	return out, rows.Err()
}
