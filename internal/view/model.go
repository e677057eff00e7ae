package view

import "github.com/postdeck/postdeck/internal/domain"

// Model merges the latest fetched post batch, the bulk author lookup and the
// lazily filled comments index into what the rendering layer consumes.
// Mutation methods are local-first: they assume the remote write succeeds and
// never roll back on their own. The Model is not goroutine safe; the
// controller serializes access to it.
type Model struct {
	posts    []domain.Post
	total    int
	authors  map[int64]domain.AuthorRef
	comments map[int64][]domain.Comment
	tags     []domain.Tag
}

func New() *Model {
	return &Model{
		authors:  make(map[int64]domain.AuthorRef),
		comments: make(map[int64][]domain.Comment),
	}
}

// SetPosts replaces the post collection wholesale and joins each post with
// its author by UserID. The author lookup is retained so locally created
// posts can be joined later without refetching users.
func (m *Model) SetPosts(posts []domain.Post, authors []domain.AuthorRef, total int) {
	m.authors = make(map[int64]domain.AuthorRef, len(authors))
	for _, a := range authors {
		m.authors[a.ID] = a
	}

	m.posts = make([]domain.Post, len(posts))
	copy(m.posts, posts)
	for i := range m.posts {
		m.posts[i].Author = m.author(m.posts[i].UserID)
	}
	m.total = total
}

func (m *Model) author(userID int64) *domain.AuthorRef {
	if a, ok := m.authors[userID]; ok {
		return &a
	}
	return nil
}

func (m *Model) Posts() []domain.Post {
	out := make([]domain.Post, len(m.posts))
	copy(out, m.posts)
	return out
}

func (m *Model) Total() int { return m.total }

func (m *Model) Post(id int64) (domain.Post, bool) {
	for _, p := range m.posts {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Post{}, false
}

func (m *Model) Author(userID int64) (domain.AuthorRef, bool) {
	a, ok := m.authors[userID]
	return a, ok
}

func (m *Model) SetTags(tags []domain.Tag) { m.tags = tags }

func (m *Model) Tags() []domain.Tag {
	out := make([]domain.Tag, len(m.tags))
	copy(out, m.tags)
	return out
}

// AddPost makes a new post visible immediately, without a round trip. The id
// is assigned locally (max+1); the store's authoritative id from the
// asynchronous create is not reconciled back.
func (m *Model) AddPost(draft domain.PostDraft) domain.Post {
	post := domain.Post{
		ID:     m.nextPostID(),
		Title:  draft.Title,
		Body:   draft.Body,
		UserID: draft.UserID,
		Tags:   []string{},
		Author: m.author(draft.UserID),
	}
	m.posts = append([]domain.Post{post}, m.posts...)
	m.total++
	return post
}

func (m *Model) nextPostID() int64 {
	var max int64
	for _, p := range m.posts {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// UpdatePost patches the post in place, keeping the derived Author and any
// fields the draft does not carry. Updating a missing id is a no-op.
func (m *Model) UpdatePost(id int64, draft domain.PostDraft) bool {
	for i := range m.posts {
		if m.posts[i].ID != id {
			continue
		}
		m.posts[i].Title = draft.Title
		m.posts[i].Body = draft.Body
		if draft.UserID != 0 && draft.UserID != m.posts[i].UserID {
			m.posts[i].UserID = draft.UserID
			m.posts[i].Author = m.author(draft.UserID)
		}
		return true
	}
	return false
}

// DeletePost removes the post and decrements the total. Skip is untouched;
// the next fetch decides what fills the gap.
func (m *Model) DeletePost(id int64) bool {
	for i := range m.posts {
		if m.posts[i].ID == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			m.total--
			return true
		}
	}
	return false
}

// HasComments reports whether comments for the post were already fetched.
// Posts never opened have no entry at all.
func (m *Model) HasComments(postID int64) bool {
	_, ok := m.comments[postID]
	return ok
}

func (m *Model) SetComments(postID int64, comments []domain.Comment) {
	m.comments[postID] = append([]domain.Comment{}, comments...)
}

func (m *Model) Comments(postID int64) []domain.Comment {
	out := make([]domain.Comment, len(m.comments[postID]))
	copy(out, m.comments[postID])
	return out
}

// AddComment appends at the end of the post's comment sequence.
func (m *Model) AddComment(draft domain.CommentDraft) domain.Comment {
	comment := domain.Comment{
		ID:     m.nextCommentID(draft.PostID),
		Body:   draft.Body,
		PostID: draft.PostID,
		User:   domain.CommentRef{ID: draft.UserID},
	}
	if a, ok := m.authors[draft.UserID]; ok {
		comment.User.Username = a.Username
	}
	m.comments[draft.PostID] = append(m.comments[draft.PostID], comment)
	return comment
}

func (m *Model) nextCommentID(postID int64) int64 {
	var max int64
	for _, c := range m.comments[postID] {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

func (m *Model) UpdateComment(postID, commentID int64, body string) bool {
	list := m.comments[postID]
	for i := range list {
		if list[i].ID == commentID {
			list[i].Body = body
			return true
		}
	}
	return false
}

func (m *Model) DeleteComment(postID, commentID int64) bool {
	list := m.comments[postID]
	for i := range list {
		if list[i].ID == commentID {
			m.comments[postID] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}
