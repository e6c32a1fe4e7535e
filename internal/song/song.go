package song

// Song points at a streamable track shown on the landing page.
type Song struct {
	ID    int    `json:"songId"`
	Image string `json:"image"`
	Name  string `json:"name"`
	Link  string `json:"link"`
}
