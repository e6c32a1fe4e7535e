package address

type Address struct {
	AddressID  int    `json:"addressId"`
	UserID     int    `json:"userId"`
	HouseNo    string `json:"houseNo"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}
