package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/postdeck/postdeck/internal/domain"
	internal_errors "github.com/postdeck/postdeck/internal/errors"
)

// === Post Methods ===

// PostPage is the store's paginated post envelope.
type PostPage struct {
	Posts []domain.Post `json:"posts"`
	Total int           `json:"total"`
	Skip  int           `json:"skip"`
	Limit int           `json:"limit"`
}

// GetPosts fetches one page of the default listing. Sort params are attached
// only when a sort key is active.
func (c *Client) GetPosts(ctx context.Context, limit, skip int, sortBy, order string) (PostPage, error) {
	var page PostPage
	q := url.Values{}
	q.Set("limit", fmt.Sprint(limit))
	q.Set("skip", fmt.Sprint(skip))
	if sortBy != "" {
		q.Set("sortBy", sortBy)
		q.Set("order", order)
	}
	err := c.getJSON(ctx, "/posts?"+q.Encode(), &page)
	return page, err
}

// GetPostsByTag fetches every post for a tag. The store paginates this
// endpoint itself; skip/limit are deliberately not sent.
func (c *Client) GetPostsByTag(ctx context.Context, tag string) (PostPage, error) {
	var page PostPage
	err := c.getJSON(ctx, "/posts/tag/"+url.PathEscape(tag), &page)
	return page, err
}

// SearchPosts fetches posts matching the query, bounded by skip/limit.
func (c *Client) SearchPosts(ctx context.Context, query string, limit, skip int, sortBy, order string) (PostPage, error) {
	var page PostPage
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", fmt.Sprint(limit))
	q.Set("skip", fmt.Sprint(skip))
	if sortBy != "" {
		q.Set("sortBy", sortBy)
		q.Set("order", order)
	}
	err := c.getJSON(ctx, "/posts/search?"+q.Encode(), &page)
	return page, err
}

func (c *Client) CreatePost(ctx context.Context, draft domain.PostDraft) (domain.Post, error) {
	var created domain.Post
	jsonBody, err := json.Marshal(draft)
	if err != nil {
		return created, fmt.Errorf("failed to marshal post draft: %w", err)
	}

	resp, err := c.do(ctx, "POST", "/posts/add", bytes.NewBuffer(jsonBody))
	if err != nil {
		return created, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return created, fmt.Errorf("failed to create post: %s: %w", string(bodyBytes), internal_errors.ErrNetwork)
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return created, fmt.Errorf("cannot decode created post: %w", internal_errors.ErrDecode)
	}
	return created, nil
}

func (c *Client) UpdatePost(ctx context.Context, id int64, draft domain.PostDraft) error {
	jsonBody, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal post draft: %w", err)
	}

	resp, err := c.do(ctx, "PUT", fmt.Sprintf("/posts/%d", id), bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to update post: %s: %w", string(bodyBytes), internal_errors.ErrNetwork)
	}
	return nil
}

func (c *Client) DeletePost(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, "DELETE", fmt.Sprintf("/posts/%d", id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to delete post: %s: %w", string(bodyBytes), internal_errors.ErrNetwork)
	}
	return nil
}
