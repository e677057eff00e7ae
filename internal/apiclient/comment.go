package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/postdeck/postdeck/internal/domain"
	internal_errors "github.com/postdeck/postdeck/internal/errors"
)

// === Comment Methods ===

type commentListResponse struct {
	Comments []domain.Comment `json:"comments"`
}

func (c *Client) GetComments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	var response commentListResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/comments/post/%d", postID), &response); err != nil {
		return nil, err
	}
	return response.Comments, nil
}

func (c *Client) CreateComment(ctx context.Context, draft domain.CommentDraft) (domain.Comment, error) {
	var created domain.Comment
	jsonBody, err := json.Marshal(draft)
	if err != nil {
		return created, fmt.Errorf("failed to marshal comment draft: %w", err)
	}

	resp, err := c.do(ctx, "POST", "/comments/add", bytes.NewBuffer(jsonBody))
	if err != nil {
		return created, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return created, fmt.Errorf("failed to create comment: %s: %w", string(bodyBytes), internal_errors.ErrNetwork)
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return created, fmt.Errorf("cannot decode created comment: %w", internal_errors.ErrDecode)
	}
	return created, nil
}

func (c *Client) UpdateComment(ctx context.Context, id int64, body string) error {
	jsonBody, err := json.Marshal(map[string]string{"body": body})
	if err != nil {
		return fmt.Errorf("failed to marshal comment body: %w", err)
	}

	resp, err := c.do(ctx, "PUT", fmt.Sprintf("/comments/%d", id), bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to update comment: %s: %w", string(bodyBytes), internal_errors.ErrNetwork)
	}
	return nil
}

func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, "DELETE", fmt.Sprintf("/comments/%d", id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to delete comment: %s: %w", string(bodyBytes), internal_errors.ErrNetwork)
	}
	return nil
}
