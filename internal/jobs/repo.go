package jobs

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested job does not exist.
var ErrNotFound = errors.New("job not found")

// Repo abstracts job-posting storage.
type Repo interface {
	List(ctx context.Context) ([]Posting, error)
	GetByID(ctx context.Context, id int64) (Posting, error)
	Create(ctx context.Context, p Posting) (Posting, error)
}
