package booking

// Booking reserves a spot at a concert for a named attendee.
type Booking struct {
	ID    int    `json:"bookingId"`
	Event string `json:"event"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
}
