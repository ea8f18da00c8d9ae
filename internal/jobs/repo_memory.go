package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// MemoryRepo is an in-memory job store, optionally seeded from a JSON file.
// Used in development and tests when no database is configured.
type MemoryRepo struct {
	mu       sync.RWMutex
	postings []Posting
}

// NewMemoryRepo creates an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// NewMemoryRepoFromFile creates a repo seeded from a JSON array of postings.
func NewMemoryRepoFromFile(path string) (*MemoryRepo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read jobs file: %w", err)
	}
	var postings []Posting
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil, fmt.Errorf("parse jobs file: %w", err)
	}
	return &MemoryRepo{postings: postings}, nil
}

// List returns all postings in insertion order.
func (r *MemoryRepo) List(ctx context.Context) ([]Posting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Posting, len(r.postings))
	copy(out, r.postings)
	return out, nil
}

// GetByID returns a posting by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Posting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.postings {
		if p.ID == id {
			return p, nil
		}
	}
	return Posting{}, ErrNotFound
}

// Create appends a posting, assigning the next available ID.
func (r *MemoryRepo) Create(ctx context.Context, p Posting) (Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var maxID int64
	for _, existing := range r.postings {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	r.postings = append(r.postings, p)
	return p, nil
}

var _ Repo = (*MemoryRepo)(nil)
