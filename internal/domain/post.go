package domain

// Post is a listed record. Author is derived locally by joining the bulk user
// lookup on UserID; it is never part of what gets written back to the store.
type Post struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	UserID    int64      `json:"userId"`
	Tags      []string   `json:"tags"`
	Reactions int        `json:"reactions"`
	Author    *AuthorRef `json:"author,omitempty"`
}

// PostDraft carries the writable fields of a post for create and update.
type PostDraft struct {
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body" validate:"required"`
	UserID int64  `json:"userId" validate:"required"`
}
