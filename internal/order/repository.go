package order

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrEmptyOrder       = errors.New("order must contain at least one item")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

// Repository defines persistence operations for the order ledger.
type Repository interface {
	Create(ord Order) (Order, error)
	// MarkPaid flips the order whose payment_id matches to paid. A missing
	// match is a silent no-op, not an error; only storage failures are
	// reported.
	MarkPaid(paymentID string) error
	// ListByUser returns the user's orders newest-first.
	ListByUser(userID int) ([]Order, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if existing.Receipt == ord.Receipt {
			return Order{}, errors.New("duplicate receipt")
		}
	}

	ord.OrderID = r.nextID
	r.nextID++

	stored := ord
	stored.Items = make([]Item, len(ord.Items))
	copy(stored.Items, ord.Items)
	r.orders = append(r.orders, stored)
	return ord, nil
}

func (r *InMemoryRepository) MarkPaid(paymentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].PaymentID == paymentID {
			r.orders[i].Status = StatusPaid
		}
	}
	return nil
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0)
	for _, ord := range r.orders {
		if ord.UserID == userID {
			cp := ord
			cp.Items = make([]Item, len(ord.Items))
			copy(cp.Items, ord.Items)
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID > out[j].OrderID })
	return out, nil
}

// GetByPaymentID is a test convenience for inspecting ledger state.
func (r *InMemoryRepository) GetByPaymentID(paymentID string) (Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ord := range r.orders {
		if ord.PaymentID == paymentID {
			return ord, true
		}
	}
	return Order{}, false
}
