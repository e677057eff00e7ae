package domain

type Comment struct {
	ID     int64      `json:"id"`
	Body   string     `json:"body"`
	PostID int64      `json:"postId"`
	User   CommentRef `json:"user"`
}

// CommentRef is the author projection the store embeds in comments.
type CommentRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type CommentDraft struct {
	Body   string `json:"body" validate:"required"`
	PostID int64  `json:"postId" validate:"required"`
	UserID int64  `json:"userId" validate:"required"`
}
