package order

import (
	"github.com/stageline/bands-backend/internal/address"
)

// Order status values. The ledger has one forward transition:
// pending -> paid, taken only after signature verification succeeds.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Item is a snapshotted cart line. Orders copy the cart's lines at
// creation time; they never reference the live cart.
type Item struct {
	MerchID  int `json:"merchId"`
	Quantity int `json:"quantity"`
}

// Order is the persisted ledger entry for one checkout attempt.
// PaymentID holds the gateway's order id and is the correlation key the
// verification step matches on. Receipt is the locally generated token,
// unique per order.
type Order struct {
	OrderID     int     `json:"orderId"`
	UserID      int     `json:"userId"`
	Items       []Item  `json:"items"`
	TotalAmount float64 `json:"totalAmount"`
	PaymentID   string  `json:"paymentId"`
	Receipt     string  `json:"receipt"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

// DetailedItem is an order line denormalized against the current merch
// row. Title, price and image are live presentation data, not a snapshot;
// only the quantity comes from the order.
type DetailedItem struct {
	MerchID  int     `json:"merchId"`
	Quantity int     `json:"quantity"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
}

// Details is the list-view shape: the ledger entry plus resolved items and
// the user's current address when one is on file.
type Details struct {
	OrderID     int              `json:"orderId"`
	UserID      int              `json:"userId"`
	TotalAmount float64          `json:"totalAmount"`
	PaymentID   string           `json:"paymentId"`
	Receipt     string           `json:"receipt"`
	Status      string           `json:"status"`
	CreatedAt   string           `json:"createdAt,omitempty"`
	Items       []DetailedItem   `json:"items"`
	Address     *address.Address `json:"address,omitempty"`
}
