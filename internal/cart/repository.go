package cart

import (
	"errors"
	"sync"
)

var (
	ErrNotFound        = errors.New("cart not found")
	ErrMerchNotFound   = errors.New("merch not found")
	ErrItemNotFound    = errors.New("item not in cart")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Repository persists whole cart documents. Mutations are read-modify-write
// at the service layer; concurrent writers can lose updates, which matches
// the one-document-per-save model this store was built around.
type Repository interface {
	GetByUser(userID int) (Cart, error)
	Save(c Cart) (Cart, error)
	Delete(userID int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	carts  map[int]Cart // keyed by userID
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[int]Cart), nextID: 1}
}

func (r *InMemoryRepository) GetByUser(userID int) (Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.carts[userID]
	if !ok {
		return Cart{}, ErrNotFound
	}

	out := c
	out.Items = make([]Item, len(c.Items))
	copy(out.Items, c.Items)
	return out, nil
}

func (r *InMemoryRepository) Save(c Cart) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.CartID == 0 {
		c.CartID = r.nextID
		r.nextID++
	}

	stored := c
	stored.Items = make([]Item, len(c.Items))
	copy(stored.Items, c.Items)
	r.carts[c.UserID] = stored
	return c, nil
}

func (r *InMemoryRepository) Delete(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[userID]; !ok {
		return ErrNotFound
	}
	delete(r.carts, userID)
	return nil
}
