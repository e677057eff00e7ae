package controller

import (
	"context"
	"log/slog"

	"github.com/postdeck/postdeck/internal/domain"
	"github.com/postdeck/postdeck/internal/middleware/metrics"
)

// Mutations are local-first: memory is updated immediately and the remote
// write runs in the background. A failed write is logged and counted but the
// optimistic change is not rolled back.

func (c *Controller) CreatePost(ctx context.Context, draft domain.PostDraft) domain.Post {
	c.mu.Lock()
	post := c.model.AddPost(draft)
	c.mu.Unlock()

	c.remoteWrite(ctx, "create post", func(ctx context.Context) error {
		_, err := c.client.CreatePost(ctx, draft)
		return err
	})
	return post
}

// UpdatePost patches the post in memory. A missing id (e.g. deleted while the
// edit dialog was open) makes the whole operation a no-op: nothing is
// resurrected locally and no remote write is sent.
func (c *Controller) UpdatePost(ctx context.Context, id int64, draft domain.PostDraft) bool {
	c.mu.Lock()
	ok := c.model.UpdatePost(id, draft)
	c.mu.Unlock()
	if !ok {
		return false
	}

	c.remoteWrite(ctx, "update post", func(ctx context.Context) error {
		return c.client.UpdatePost(ctx, id, draft)
	})
	return true
}

func (c *Controller) DeletePost(ctx context.Context, id int64) bool {
	c.mu.Lock()
	ok := c.model.DeletePost(id)
	c.mu.Unlock()
	if !ok {
		return false
	}

	c.remoteWrite(ctx, "delete post", func(ctx context.Context) error {
		return c.client.DeletePost(ctx, id)
	})
	return true
}

// OpenComments returns the post's comments, fetching them on first access.
// Comments for posts never opened stay absent.
func (c *Controller) OpenComments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	c.mu.Lock()
	fetched := c.model.HasComments(postID)
	c.mu.Unlock()

	if !fetched {
		comments, err := c.client.GetComments(ctx, postID)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.model.SetComments(postID, comments)
		c.mu.Unlock()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model.Comments(postID), nil
}

func (c *Controller) CreateComment(ctx context.Context, draft domain.CommentDraft) domain.Comment {
	c.mu.Lock()
	comment := c.model.AddComment(draft)
	c.mu.Unlock()

	c.remoteWrite(ctx, "create comment", func(ctx context.Context) error {
		_, err := c.client.CreateComment(ctx, draft)
		return err
	})
	return comment
}

func (c *Controller) UpdateComment(ctx context.Context, postID, commentID int64, body string) bool {
	c.mu.Lock()
	ok := c.model.UpdateComment(postID, commentID, body)
	c.mu.Unlock()
	if !ok {
		return false
	}

	c.remoteWrite(ctx, "update comment", func(ctx context.Context) error {
		return c.client.UpdateComment(ctx, commentID, body)
	})
	return true
}

func (c *Controller) DeleteComment(ctx context.Context, postID, commentID int64) bool {
	c.mu.Lock()
	ok := c.model.DeleteComment(postID, commentID)
	c.mu.Unlock()
	if !ok {
		return false
	}

	c.remoteWrite(ctx, "delete comment", func(ctx context.Context) error {
		return c.client.DeleteComment(ctx, commentID)
	})
	return true
}

// remoteWrite confirms an optimistic mutation in the background. The parent
// request context is detached so finishing the HTTP response does not cancel
// the write.
func (c *Controller) remoteWrite(ctx context.Context, op string, fn func(context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := fn(ctx); err != nil {
			metrics.ObserveRemoteWriteFailure()
			slog.Error("remote write failed, local state kept", "op", op, "error", err)
		}
	}()
}
