package apiclient

import (
	"context"

	"github.com/postdeck/postdeck/internal/domain"
)

// === User Methods ===

type userListResponse struct {
	Users []domain.AuthorRef `json:"users"`
}

// GetAuthors fetches the minimal projection of every user in one call
// (limit=0 means "no limit" on the store side).
func (c *Client) GetAuthors(ctx context.Context) ([]domain.AuthorRef, error) {
	var response userListResponse
	if err := c.getJSON(ctx, "/users?limit=0&select=username,image", &response); err != nil {
		return nil, err
	}
	return response.Users, nil
}
