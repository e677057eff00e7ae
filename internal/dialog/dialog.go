package dialog

import "github.com/postdeck/postdeck/internal/domain"

// Machine tracks which dialog (if any) is open and what it points at. At
// most one non-Idle state is active; opening a dialog while another is open
// closes the prior one first, so overlapping modals cannot happen.

type State int

const (
	Idle State = iota
	AddingPost
	EditingPost
	AddingComment
	EditingComment
	ViewingPostDetail
	ViewingAuthor
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AddingPost:
		return "adding_post"
	case EditingPost:
		return "editing_post"
	case AddingComment:
		return "adding_comment"
	case EditingComment:
		return "editing_comment"
	case ViewingPostDetail:
		return "viewing_post_detail"
	case ViewingAuthor:
		return "viewing_author"
	}
	return "unknown"
}

type Machine struct {
	state State

	post    *domain.Post
	comment *domain.Comment
	author  *domain.AuthorRef
}

func New() *Machine {
	return &Machine{state: Idle}
}

func (m *Machine) State() State { return m.state }

// Close returns to Idle and clears the selection. Safe to call when already
// idle.
func (m *Machine) Close() {
	m.state = Idle
	m.post = nil
	m.comment = nil
	m.author = nil
}

func (m *Machine) OpenAddPost() {
	m.Close()
	m.state = AddingPost
}

func (m *Machine) OpenEditPost(post domain.Post) {
	m.Close()
	m.state = EditingPost
	m.post = &post
}

func (m *Machine) OpenAddComment(post domain.Post) {
	m.Close()
	m.state = AddingComment
	m.post = &post
}

func (m *Machine) OpenEditComment(comment domain.Comment) {
	m.Close()
	m.state = EditingComment
	m.comment = &comment
}

func (m *Machine) OpenPostDetail(post domain.Post) {
	m.Close()
	m.state = ViewingPostDetail
	m.post = &post
}

func (m *Machine) OpenAuthor(author domain.AuthorRef) {
	m.Close()
	m.state = ViewingAuthor
	m.author = &author
}

// Selection accessors return the payload carried by the current transition,
// nil when the state does not target that entity.

func (m *Machine) SelectedPost() *domain.Post        { return m.post }
func (m *Machine) SelectedComment() *domain.Comment  { return m.comment }
func (m *Machine) SelectedAuthor() *domain.AuthorRef { return m.author }
