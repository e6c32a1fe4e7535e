package cart

import (
	"testing"

	"github.com/stageline/bands-backend/internal/merch"
)

func newTestService() (*Service, *InMemoryRepository) {
	repo := NewInMemoryRepository()
	merchRepo := merch.NewInMemoryRepository([]merch.Merch{
		{ID: 1, Title: "Tour Tee", Price: 500, Image: "/img/tee.png", Description: "black tee"},
		{ID: 2, Title: "Vinyl", Price: 1500, Image: "/img/vinyl.png", Description: "limited press"},
	})
	return NewService(repo, merch.NewService(merchRepo)), repo
}

func TestAddToCart_CreatesThenIncrements(t *testing.T) {
	svc, _ := newTestService()

	c, err := svc.AddToCart(42, 1, 2)
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if len(c.Items) != 1 || c.Items[0].Quantity != 2 {
		t.Fatalf("unexpected cart after first add: %+v", c.Items)
	}

	c, err = svc.AddToCart(42, 1, 1)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if len(c.Items) != 1 {
		t.Fatalf("expected a single line item, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity summed to 3, got %d", c.Items[0].Quantity)
	}

	populated, err := svc.GetCart(42)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(populated.Items) != 1 {
		t.Fatalf("expected 1 populated item, got %d", len(populated.Items))
	}
	if populated.Items[0].Merch.Title != "Tour Tee" || populated.Items[0].Quantity != 3 {
		t.Fatalf("unexpected populated item: %+v", populated.Items[0])
	}
}

func TestAddToCart_UnknownMerch(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.AddToCart(42, 99, 1); err != ErrMerchNotFound {
		t.Fatalf("expected ErrMerchNotFound, got %v", err)
	}
}

func TestAddToCart_RejectsZeroQuantity(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.AddToCart(42, 1, 0); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestSetQuantity_NeverCreates(t *testing.T) {
	svc, _ := newTestService()

	// no cart at all
	if _, err := svc.SetQuantity(42, 1, 5); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on missing cart, got %v", err)
	}

	if _, err := svc.AddToCart(42, 1, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// line item not in cart
	if _, err := svc.SetQuantity(42, 2, 5); err != ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound on missing line, got %v", err)
	}

	// exact overwrite, not an increment
	c, err := svc.SetQuantity(42, 1, 5)
	if err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if c.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity overwritten to 5, got %d", c.Items[0].Quantity)
	}
}

func TestRemove_IsIdempotentOnFoundCart(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Remove(42, 1); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound when no cart exists, got %v", err)
	}

	if _, err := svc.AddToCart(42, 1, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.AddToCart(42, 2, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	c, err := svc.Remove(42, 1)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(c.Items) != 1 || c.Items[0].MerchID != 2 {
		t.Fatalf("unexpected cart after remove: %+v", c.Items)
	}

	// removing the same item again is a silent no-op
	c2, err := svc.Remove(42, 1)
	if err != nil {
		t.Fatalf("second remove failed: %v", err)
	}
	if len(c2.Items) != 1 || c2.Items[0].MerchID != 2 {
		t.Fatalf("second remove changed cart state: %+v", c2.Items)
	}
}

func TestClear_ThenGetReturnsEmpty(t *testing.T) {
	svc, _ := newTestService()

	if err := svc.Clear(42); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound clearing a missing cart, got %v", err)
	}

	if _, err := svc.AddToCart(42, 1, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Clear(42); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	populated, err := svc.GetCart(42)
	if err != nil {
		t.Fatalf("get after clear errored: %v", err)
	}
	if len(populated.Items) != 0 {
		t.Fatalf("expected empty items after clear, got %+v", populated.Items)
	}
}
