package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/tradepost/tradepost/pkg/types"
)

// ItemsResponse wraps a paginated items response.
type ItemsResponse struct {
	Items []domain.Item `json:"items"`
	Total int           `json:"total"`
}

// ListItemsParams defines query parameters for item listing queries.
type ListItemsParams struct {
	Category  int
	Condition int
	Seller    string
	MaxPrice  float64
	Limit     int
	Offset    int
	OrderBy   string
}

// SellParams defines the fields for listing a new item.
type SellParams struct {
	Token     string  `json:"token"`
	Type      int     `json:"type"`
	Name      string  `json:"name"`
	Image     string  `json:"image,omitempty"`
	Condition int     `json:"condition"`
	Price     float64 `json:"price"`
}

// ListNewItem puts an item up for sale and returns the generated identifier.
func (c *Client) ListNewItem(ctx context.Context, params *SellParams) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.post(ctx, "/api/Sellers/ListNewItem", params, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// GetByID returns a single item by its identifier.
func (c *Client) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var it domain.Item
	if err := c.get(ctx, fmt.Sprintf("/api/Sellers/GetById/%d", id), &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// Search returns all items whose name contains the search text.
func (c *Client) Search(ctx context.Context, text string) ([]domain.Item, error) {
	body := map[string]string{"search": text}

	var items []domain.Item
	if err := c.put(ctx, "/api/Sellers/GetBySearch", body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ByCategory returns all items in the given category.
func (c *Client) ByCategory(ctx context.Context, category int) ([]domain.Item, error) {
	var items []domain.Item
	if err := c.get(ctx, fmt.Sprintf("/api/Sellers/GetByCategory/%d", category), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListItems returns items matching the given parameters.
func (c *Client) ListItems(
	ctx context.Context,
	params *ListItemsParams,
) (*ItemsResponse, error) {
	q := url.Values{}
	if params.Category != 0 {
		q.Set("category", strconv.Itoa(params.Category))
	}
	if params.Condition != 0 {
		q.Set("condition", strconv.Itoa(params.Condition))
	}
	if params.Seller != "" {
		q.Set("seller", params.Seller)
	}
	if params.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(params.MaxPrice, 'f', -1, 64))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/Sellers/ListItems"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ItemsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
