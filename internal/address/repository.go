package address

import (
	"errors"
	"sync"
)

var (
	ErrNotFound      = errors.New("address not found")
	ErrAlreadyExists = errors.New("address already exists for this user")
)

// Repository stores at most one address per user.
type Repository interface {
	GetByUser(userID int) (Address, error)
	Create(a Address) (Address, error)
	Update(userID int, a Address) (Address, error)
}

// InMemoryRepository for tests
type InMemoryRepository struct {
	mu     sync.RWMutex
	byUser map[int]Address
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byUser: make(map[int]Address), nextID: 1}
}

func (r *InMemoryRepository) GetByUser(userID int) (Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byUser[userID]
	if !ok {
		return Address{}, ErrNotFound
	}
	return a, nil
}

func (r *InMemoryRepository) Create(a Address) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUser[a.UserID]; ok {
		return Address{}, ErrAlreadyExists
	}
	a.AddressID = r.nextID
	r.nextID++
	r.byUser[a.UserID] = a
	return a, nil
}

func (r *InMemoryRepository) Update(userID int, a Address) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byUser[userID]
	if !ok {
		return Address{}, ErrNotFound
	}
	a.AddressID = existing.AddressID
	a.UserID = userID
	a.CreatedAt = existing.CreatedAt
	r.byUser[userID] = a
	return a, nil
}
