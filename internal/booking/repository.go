package booking

import (
	"errors"
	"sync"
)

var ErrMissingFields = errors.New("all fields are required")

type Repository interface {
	Create(b Booking) (Booking, error)
}

// InMemoryRepository for tests
type InMemoryRepository struct {
	mu       sync.Mutex
	bookings []Booking
	nextID   int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(b Booking) (Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = r.nextID
	r.nextID++
	r.bookings = append(r.bookings, b)
	return b, nil
}
