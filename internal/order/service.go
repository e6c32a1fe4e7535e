package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/stageline/bands-backend/internal/address"
	"github.com/stageline/bands-backend/internal/merch"
	"github.com/stageline/bands-backend/internal/payment"
)

// MerchFinder resolves merch for the order list view.
type MerchFinder interface {
	ListByIDs(ids []int) ([]merch.Merch, error)
}

// AddressFinder looks up the user's current address for display. It never
// gates order creation.
type AddressFinder interface {
	GetByUser(userID int) (address.Address, error)
}

// Service is the order reconciliation flow: cart snapshot -> ledger entry
// -> gateway order -> (client-side capture) -> signature verification ->
// status update.
type Service struct {
	repo      Repository
	gateway   payment.Gateway
	merch     MerchFinder
	addresses AddressFinder
}

func NewService(repo Repository, gateway payment.Gateway, merchFinder MerchFinder, addressFinder AddressFinder) *Service {
	return &Service{repo: repo, gateway: gateway, merch: merchFinder, addresses: addressFinder}
}

// Create registers a checkout attempt with the gateway and persists a
// pending ledger entry correlated to it. The caller's cart is untouched;
// clearing it after verified payment is the caller's job.
func (s *Service) Create(userID int, totalAmount float64, items []Item) (Order, payment.GatewayOrder, error) {
	if userID <= 0 {
		return Order{}, payment.GatewayOrder{}, errors.New("invalid user")
	}
	if len(items) == 0 {
		return Order{}, payment.GatewayOrder{}, ErrEmptyOrder
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return Order{}, payment.GatewayOrder{}, ErrInvalidQuantity
		}
	}

	// timestamp-derived token; uniqueness rides on the receipt column's
	// UNIQUE constraint and a collision fails the insert
	receipt := fmt.Sprintf("rcpt_%d", time.Now().UnixMilli())

	// rupees -> paise
	amountMinor := int64(math.Round(totalAmount * 100))

	gatewayOrder, err := s.gateway.CreateOrder(amountMinor, "INR", receipt)
	if err != nil {
		return Order{}, payment.GatewayOrder{}, err
	}

	snapshot := make([]Item, len(items))
	copy(snapshot, items)

	created, err := s.repo.Create(Order{
		UserID:      userID,
		Items:       snapshot,
		TotalAmount: totalAmount,
		PaymentID:   gatewayOrder.ID,
		Receipt:     receipt,
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return Order{}, payment.GatewayOrder{}, err
	}

	return created, gatewayOrder, nil
}

// VerifyPayment checks the capture callback's signature and, on a match,
// flips the correlated order to paid. A mismatch mutates nothing. A
// matching signature with no matching order is a silent no-op, and
// repeated verification of a paid order leaves it paid.
func (s *Service) VerifyPayment(gatewayOrderID, gatewayPaymentID, signature string) error {
	if !s.gateway.VerifySignature(gatewayOrderID, gatewayPaymentID, signature) {
		return ErrInvalidSignature
	}
	return s.repo.MarkPaid(gatewayOrderID)
}

// ListByUser returns the user's orders newest-first, line items resolved
// against the current merch catalog and the current address attached when
// one is on file.
func (s *Service) ListByUser(userID int) ([]Details, error) {
	orders, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	idSet := map[int]struct{}{}
	for _, ord := range orders {
		for _, it := range ord.Items {
			idSet[it.MerchID] = struct{}{}
		}
	}
	ids := make([]int, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	byID := map[int]merch.Merch{}
	if len(ids) > 0 {
		resolved, err := s.merch.ListByIDs(ids)
		if err != nil {
			return nil, err
		}
		for _, m := range resolved {
			byID[m.ID] = m
		}
	}

	var addr *address.Address
	if a, err := s.addresses.GetByUser(userID); err == nil {
		addr = &a
	} else if err != address.ErrNotFound {
		return nil, err
	}

	out := make([]Details, 0, len(orders))
	for _, ord := range orders {
		d := Details{
			OrderID:     ord.OrderID,
			UserID:      ord.UserID,
			TotalAmount: ord.TotalAmount,
			PaymentID:   ord.PaymentID,
			Receipt:     ord.Receipt,
			Status:      ord.Status,
			CreatedAt:   ord.CreatedAt,
			Items:       make([]DetailedItem, 0, len(ord.Items)),
			Address:     addr,
		}
		for _, it := range ord.Items {
			di := DetailedItem{MerchID: it.MerchID, Quantity: it.Quantity}
			if m, ok := byID[it.MerchID]; ok {
				di.Title = m.Title
				di.Price = m.Price
				di.Image = m.Image
			}
			d.Items = append(d.Items, di)
		}
		out = append(out, d)
	}
	return out, nil
}
