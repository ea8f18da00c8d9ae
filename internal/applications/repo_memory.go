package applications

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory application log for development and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	apps []Application
}

// NewMemoryRepo creates an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends an application record.
func (r *MemoryRepo) Create(ctx context.Context, app Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps = append(r.apps, app)
	return nil
}

// GetByID returns an application by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, app := range r.apps {
		if app.ID == id {
			return app, nil
		}
	}
	return Application{}, ErrNotFound
}

// List returns all applications newest-first.
func (r *MemoryRepo) List(ctx context.Context) ([]Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Application, 0, len(r.apps))
	for i := len(r.apps) - 1; i >= 0; i-- {
		out = append(out, r.apps[i])
	}
	return out, nil
}

// UpdateStatus transitions an application's dispatch state.
func (r *MemoryRepo) UpdateStatus(ctx context.Context, id, status string, simulated bool, detail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.apps {
		if r.apps[i].ID == id {
			r.apps[i].Status = status
			r.apps[i].Simulated = simulated
			r.apps[i].Detail = detail
			return nil
		}
	}
	return ErrNotFound
}

var _ Repo = (*MemoryRepo)(nil)
