package merch

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("merch not found")

type Repository interface {
	List() ([]Merch, error)
	GetByID(id int) (Merch, error)
	// ListByIDs returns the merch rows whose id is present in ids. Missing
	// ids are skipped, not errors; an empty ids slice returns an empty
	// slice without hitting the store.
	ListByIDs(ids []int) ([]Merch, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []Merch
}

func NewInMemoryRepository(seed []Merch) *InMemoryRepository {
	r := &InMemoryRepository{items: make([]Merch, 0, len(seed))}
	r.items = append(r.items, seed...)
	return r
}

func (r *InMemoryRepository) List() ([]Merch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Merch, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Merch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.items {
		if m.ID == id {
			return m, nil
		}
	}
	return Merch{}, ErrNotFound
}

func (r *InMemoryRepository) ListByIDs(ids []int) ([]Merch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Merch, 0, len(ids))
	for _, id := range ids {
		for _, m := range r.items {
			if m.ID == id {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}
