package applications

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested application does not exist.
var ErrNotFound = errors.New("application not found")

// Repo abstracts application-record storage.
type Repo interface {
	Create(ctx context.Context, app Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	List(ctx context.Context) ([]Application, error)
	UpdateStatus(ctx context.Context, id, status string, simulated bool, detail string) error
}
