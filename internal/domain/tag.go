package domain

// Tag is immutable reference data for the duration of a session.
type Tag struct {
	Slug string `json:"slug"`
	URL  string `json:"url"`
}
