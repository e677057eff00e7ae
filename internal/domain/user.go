package domain

// AuthorRef is the minimal user projection fetched in bulk for display
// enrichment. It has no CRUD lifecycle of its own.
type AuthorRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Image    string `json:"image"`
}
