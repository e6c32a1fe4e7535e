package merch

// Merch is a single piece of band merchandise. It is read-only from the
// cart and order flows; those packages only resolve merch by id.
type Merch struct {
	ID          int     `json:"merchId"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}
