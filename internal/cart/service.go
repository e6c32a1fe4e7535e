package cart

import (
	"time"

	"github.com/stageline/bands-backend/internal/merch"
)

// MerchFinder resolves merch references; the merch service satisfies it.
type MerchFinder interface {
	GetByID(id int) (merch.Merch, error)
	ListByIDs(ids []int) ([]merch.Merch, error)
}

// Service orchestrates cart operations.
type Service struct {
	repo  Repository
	merch MerchFinder
}

func NewService(repo Repository, merchFinder MerchFinder) *Service {
	return &Service{repo: repo, merch: merchFinder}
}

// AddToCart puts qty units of a merch item into the user's cart, creating
// the cart if needed. An existing line is incremented, not replaced.
func (s *Service) AddToCart(userID, merchID, qty int) (Cart, error) {
	if qty < 1 {
		return Cart{}, ErrInvalidQuantity
	}
	if _, err := s.merch.GetByID(merchID); err != nil {
		if err == merch.ErrNotFound {
			return Cart{}, ErrMerchNotFound
		}
		return Cart{}, err
	}

	c, err := s.repo.GetByUser(userID)
	switch err {
	case nil:
		found := false
		for i := range c.Items {
			if c.Items[i].MerchID == merchID {
				c.Items[i].Quantity += qty
				found = true
				break
			}
		}
		if !found {
			c.Items = append(c.Items, Item{MerchID: merchID, Quantity: qty})
		}
	case ErrNotFound:
		c = Cart{UserID: userID, Items: []Item{{MerchID: merchID, Quantity: qty}}}
	default:
		return Cart{}, err
	}

	c.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Save(c)
}

// GetCart returns the cart with merch references resolved. "No cart" and
// "empty cart" are the same thing to callers.
func (s *Service) GetCart(userID int) (PopulatedCart, error) {
	c, err := s.repo.GetByUser(userID)
	if err != nil {
		if err == ErrNotFound {
			return PopulatedCart{Items: []PopulatedItem{}}, nil
		}
		return PopulatedCart{}, err
	}

	ids := make([]int, 0, len(c.Items))
	for _, it := range c.Items {
		ids = append(ids, it.MerchID)
	}

	resolved, err := s.merch.ListByIDs(ids)
	if err != nil {
		return PopulatedCart{}, err
	}
	byID := make(map[int]merch.Merch, len(resolved))
	for _, m := range resolved {
		byID[m.ID] = m
	}

	out := PopulatedCart{CartID: c.CartID, UserID: c.UserID, Items: make([]PopulatedItem, 0, len(c.Items))}
	for _, it := range c.Items {
		m, ok := byID[it.MerchID]
		if !ok {
			// merch row deleted since the line was added; drop the line
			// from the view rather than render a hole
			continue
		}
		out.Items = append(out.Items, PopulatedItem{Merch: m, Quantity: it.Quantity})
	}
	return out, nil
}

// SetQuantity overwrites an existing line's quantity. It never creates a
// cart or a line.
func (s *Service) SetQuantity(userID, merchID, qty int) (Cart, error) {
	if qty < 1 {
		return Cart{}, ErrInvalidQuantity
	}

	c, err := s.repo.GetByUser(userID)
	if err != nil {
		return Cart{}, err
	}

	for i := range c.Items {
		if c.Items[i].MerchID == merchID {
			c.Items[i].Quantity = qty
			c.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			return s.repo.Save(c)
		}
	}
	return Cart{}, ErrItemNotFound
}

// Remove filters the line out of a found cart. Removing a line that is not
// there is a silent no-op; a missing cart is still ErrNotFound.
func (s *Service) Remove(userID, merchID int) (Cart, error) {
	c, err := s.repo.GetByUser(userID)
	if err != nil {
		return Cart{}, err
	}

	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.MerchID != merchID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
	c.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Save(c)
}

// Clear deletes the whole cart document.
func (s *Service) Clear(userID int) error {
	return s.repo.Delete(userID)
}
