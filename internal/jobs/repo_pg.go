package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Postings are stored as jsonb
// payloads so both naming schemes round-trip without schema churn.
type PGRepo struct {
	DB *sql.DB
}

// List returns all postings ordered by ID.
func (r *PGRepo) List(ctx context.Context) ([]Posting, error) {
	const query = `SELECT id, payload FROM jobs ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var out []Posting
	for rows.Next() {
		var id int64
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		var p Posting
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("decode job %d: %w", id, err)
		}
		p.ID = id
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID returns a posting by ID.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Posting, error) {
	const query = `SELECT payload FROM jobs WHERE id = $1 LIMIT 1`
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Posting{}, ErrNotFound
	}
	if err != nil {
		return Posting{}, fmt.Errorf("get job: %w", err)
	}
	var p Posting
	if err := json.Unmarshal(payload, &p); err != nil {
		return Posting{}, fmt.Errorf("decode job %d: %w", id, err)
	}
	p.ID = id
	return p, nil
}

// Create inserts a posting with the next available ID.
func (r *PGRepo) Create(ctx context.Context, p Posting) (Posting, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return Posting{}, err
	}
	defer tx.Rollback()

	var nextID int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM jobs`).Scan(&nextID); err != nil {
		return Posting{}, fmt.Errorf("next job id: %w", err)
	}
	p.ID = nextID

	payload, err := json.Marshal(p)
	if err != nil {
		return Posting{}, fmt.Errorf("encode job: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO jobs (id, payload) VALUES ($1, $2)`, p.ID, payload); err != nil {
		return Posting{}, fmt.Errorf("insert job: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Posting{}, err
	}
	return p, nil
}

var _ Repo = (*PGRepo)(nil)
