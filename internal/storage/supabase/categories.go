package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"eventsBoard/internal/models"
	"eventsBoard/internal/storage"
	"fmt"
	"net/http"
	"net/url"
)

func (c *Client) ListCategories(ctx context.Context, token string) ([]models.Category, error) {
	const op = "storage.supabase.ListCategories"

	var categories []models.Category

	err := c.get(ctx, request{
		op:    op,
		path:  restPrefix + "categories",
		query: url.Values{"select": {"*"}},
		token: token,
	}, &categories)
	if err != nil {
		return nil, err
	}

	if categories == nil {
		categories = []models.Category{}
	}

	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, token string, in models.CategoryInput) (models.Category, error) {
	const op = "storage.supabase.CreateCategory"

	var raw json.RawMessage

	err := c.do(ctx, request{
		op:      op,
		method:  http.MethodPost,
		path:    restPrefix + "categories",
		token:   token,
		body:    in,
		headers: map[string]string{"Prefer": "return=representation"},
	}, &raw)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
			return models.Category{}, fmt.Errorf("%s: %w", op, storage.ErrCategoryExists)
		}
		return models.Category{}, err
	}

	var category models.Category

	found, err := decodeOne(raw, &category)
	if err != nil {
		return models.Category{}, fmt.Errorf("%s: decode category: %w", op, err)
	}
	if !found {
		return models.Category{}, errors.New(op + ": backend returned no category")
	}

	return category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	const op = "storage.supabase.DeleteCategory"

	return c.do(ctx, request{
		op:     op,
		method: http.MethodDelete,
		path:   restPrefix + "categories",
		query:  url.Values{"id": {eq(id)}},
		token:  token,
	}, nil)
}
