package controller

import (
	"fmt"
	"net/http"

	"github.com/postdeck/postdeck/internal/dialog"
	"github.com/postdeck/postdeck/internal/domain"
	internal_errors "github.com/postdeck/postdeck/internal/errors"
)

// Dialog transitions. The machine enforces that opening a dialog closes the
// prior one, so at most one is ever active. Transitions that target an entity
// resolve it from the view model first; a missing target fails the transition
// and leaves the machine untouched.

func (c *Controller) DialogState() dialog.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogs.State()
}

func (c *Controller) CloseDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogs.Close()
}

func (c *Controller) OpenAddPost() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogs.OpenAddPost()
}

func (c *Controller) OpenEditPost(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	post, ok := c.model.Post(id)
	if !ok {
		return postNotFound(id)
	}
	c.dialogs.OpenEditPost(post)
	return nil
}

func (c *Controller) OpenPostDetail(id int64) (domain.Post, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	post, ok := c.model.Post(id)
	if !ok {
		return domain.Post{}, postNotFound(id)
	}
	c.dialogs.OpenPostDetail(post)
	return post, nil
}

func (c *Controller) OpenAddComment(postID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	post, ok := c.model.Post(postID)
	if !ok {
		return postNotFound(postID)
	}
	c.dialogs.OpenAddComment(post)
	return nil
}

func (c *Controller) OpenEditComment(postID, commentID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, comment := range c.model.Comments(postID) {
		if comment.ID == commentID {
			c.dialogs.OpenEditComment(comment)
			return nil
		}
	}
	return &internal_errors.ErrorWithStatusCode{
		Message: fmt.Sprintf("comment %d not found on post %d", commentID, postID), StatusCode: http.StatusNotFound,
	}
}

func (c *Controller) OpenAuthor(userID int64) (domain.AuthorRef, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	author, ok := c.model.Author(userID)
	if !ok {
		return domain.AuthorRef{}, &internal_errors.ErrorWithStatusCode{
			Message: fmt.Sprintf("user %d not found", userID), StatusCode: http.StatusNotFound,
		}
	}
	c.dialogs.OpenAuthor(author)
	return author, nil
}

func postNotFound(id int64) error {
	return &internal_errors.ErrorWithStatusCode{
		Message: fmt.Sprintf("post %d not found", id), StatusCode: http.StatusNotFound,
	}
}
