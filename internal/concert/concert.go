package concert

// Concert is an upcoming show on the band's schedule. Date and price are
// presentation strings, formatted upstream.
type Concert struct {
	ID    int    `json:"concertId"`
	Image string `json:"image"`
	Name  string `json:"name"`
	Date  string `json:"date"`
	Price string `json:"price"`
}
