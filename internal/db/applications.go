package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateApplication is returned when the user already tracked an
// application for the same source URL.
var ErrDuplicateApplication = errors.New("application already tracked for this URL")

const applicationColumns = `id, user_id, company_id, title, company_name,
	COALESCE(location, ''), COALESCE(location_type, ''), COALESCE(description, ''),
	COALESCE(salary_text, ''), COALESCE(job_type, ''), COALESCE(experience_level, ''),
	skills, source_url, source_platform, status, applied_at, updated_at`

func scanApplication(row pgx.Row) (*Application, error) {
	var a Application
	err := row.Scan(&a.ID, &a.UserID, &a.CompanyID, &a.Title, &a.CompanyName,
		&a.Location, &a.LocationType, &a.Description,
		&a.SalaryText, &a.JobType, &a.ExperienceLevel,
		&a.Skills, &a.SourceURL, &a.SourcePlatform, &a.Status, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateApplication inserts a new application and returns its ID.
// Returns ErrDuplicateApplication if the user already tracked this URL.
func (db *DB) CreateApplication(ctx context.Context, app *Application) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications
			(user_id, company_id, title, company_name, location, location_type,
			 description, salary_text, job_type, experience_level, skills,
			 source_url, source_platform, status)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''),
			 NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), $11,
			 $12, $13, $14)
		 RETURNING id`,
		app.UserID, app.CompanyID, app.Title, app.CompanyName, app.Location, app.LocationType,
		app.Description, app.SalaryText, app.JobType, app.ExperienceLevel, app.Skills,
		app.SourceURL, app.SourcePlatform, app.Status,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return uuid.Nil, ErrDuplicateApplication
		}
		return uuid.Nil, fmt.Errorf("failed to create application: %w", err)
	}
	return id, nil
}

// GetApplication retrieves an application by ID scoped to a user.
// Returns nil if not found.
func (db *DB) GetApplication(ctx context.Context, userID, appID uuid.UUID) (*Application, error) {
	app, err := scanApplication(db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1 AND user_id = $2`,
		appID, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// ApplicationFilters holds optional filters for listing applications
type ApplicationFilters struct {
	Status  string
	Company string
	Limit   int
}

// ListApplications retrieves a user's applications, newest first
func (db *DB) ListApplications(ctx context.Context, userID uuid.UUID, filters ApplicationFilters) ([]Application, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT ` + applicationColumns + ` FROM applications WHERE user_id = $1`
	args := []any{userID}
	argNum := 2

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}
	if filters.Company != "" {
		query += fmt.Sprintf(" AND company_name ILIKE $%d", argNum)
		args = append(args, "%"+filters.Company+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY applied_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

// UpdateApplicationStatus changes the status of an application
func (db *DB) UpdateApplicationStatus(ctx context.Context, userID, appID uuid.UUID, status string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`,
		status, appID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", appID)
	}
	return nil
}

// DeleteApplication removes an application
func (db *DB) DeleteApplication(ctx context.Context, userID, appID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM applications WHERE id = $1 AND user_id = $2`,
		appID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", appID)
	}
	return nil
}

// CountApplications returns the user's total tracked applications
func (db *DB) CountApplications(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE user_id = $1`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

// CountApplicationsByStatus returns the user's applications with the given status
func (db *DB) CountApplicationsByStatus(ctx context.Context, userID uuid.UUID, status string) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE user_id = $1 AND status = $2`,
		userID, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count applications by status: %w", err)
	}
	return count, nil
}

// DailyApplicationCounts returns per-day application counts since the given
// date, newest day first. Days with no applications are omitted.
func (db *DB) DailyApplicationCounts(ctx context.Context, userID uuid.UUID, since time.Time) ([]DailyCount, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT DATE_TRUNC('day', applied_at) AS day, COUNT(*)
		 FROM applications
		 WHERE user_id = $1 AND applied_at >= $2
		 GROUP BY day ORDER BY day DESC`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily counts: %w", err)
	}
	defer rows.Close()

	var counts []DailyCount
	for rows.Next() {
		var dc DailyCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan daily count: %w", err)
		}
		counts = append(counts, dc)
	}
	return counts, nil
}
