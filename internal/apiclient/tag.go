package apiclient

import (
	"context"

	"github.com/postdeck/postdeck/internal/domain"
)

// === Tag Methods ===

func (c *Client) GetTags(ctx context.Context) ([]domain.Tag, error) {
	var tags []domain.Tag
	if err := c.getJSON(ctx, "/posts/tags", &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
