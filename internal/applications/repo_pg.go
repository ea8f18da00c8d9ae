package applications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts an application record.
func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO applications (id, job_id, applicant_name, job_title, company, recipient, status, simulated, letter, detail, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.DB.ExecContext(ctx, query,
		app.ID,
		app.JobID,
		app.ApplicantName,
		app.JobTitle,
		app.Company,
		app.Recipient,
		app.Status,
		app.Simulated,
		app.Letter,
		app.Detail,
		app.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// GetByID returns an application by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Application, error) {
	const query = `
SELECT id, job_id, applicant_name, job_title, company, recipient, status, simulated, letter, detail, created_at
FROM applications
WHERE id = $1
LIMIT 1`
	var app Application
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&app.ID,
		&app.JobID,
		&app.ApplicantName,
		&app.JobTitle,
		&app.Company,
		&app.Recipient,
		&app.Status,
		&app.Simulated,
		&app.Letter,
		&app.Detail,
		&app.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Application{}, ErrNotFound
	}
	if err != nil {
		return Application{}, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}

// List returns all applications newest-first.
func (r *PGRepo) List(ctx context.Context) ([]Application, error) {
	const query = `
SELECT id, job_id, applicant_name, job_title, company, recipient, status, simulated, letter, detail, created_at
FROM applications
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		var app Application
		if err := rows.Scan(
			&app.ID,
			&app.JobID,
			&app.ApplicantName,
			&app.JobTitle,
			&app.Company,
			&app.Recipient,
			&app.Status,
			&app.Simulated,
			&app.Letter,
			&app.Detail,
			&app.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

// UpdateStatus transitions an application's dispatch state.
func (r *PGRepo) UpdateStatus(ctx context.Context, id, status string, simulated bool, detail string) error {
	const query = `UPDATE applications SET status = $2, simulated = $3, detail = $4 WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id, status, simulated, detail)
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
