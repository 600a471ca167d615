package boardapi

import (
	"context"
	"fmt"
	"net/http"
)

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := c.get(ctx, "/categories", &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) (*Category, error) {
	var cat Category
	body := map[string]string{"name": name}
	if err := c.send(ctx, http.MethodPost, "/categories", body, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/categories/%d", id))
}
