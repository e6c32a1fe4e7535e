package cart

import "github.com/stageline/bands-backend/internal/merch"

// Item is a single cart line: a merch reference plus how many are queued.
type Item struct {
	MerchID  int `json:"merchId"`
	Quantity int `json:"quantity"`
}

// Cart is one user's cart document. Items keep insertion order.
type Cart struct {
	CartID    int    `json:"cartId"`
	UserID    int    `json:"userId"`
	Items     []Item `json:"items"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// PopulatedItem is a cart line with the merch reference resolved.
type PopulatedItem struct {
	Merch    merch.Merch `json:"merch"`
	Quantity int         `json:"quantity"`
}

// PopulatedCart is the read shape returned to clients. A user without a
// cart gets an empty Items slice, not an error.
type PopulatedCart struct {
	CartID int             `json:"cartId,omitempty"`
	UserID int             `json:"userId,omitempty"`
	Items  []PopulatedItem `json:"items"`
}
