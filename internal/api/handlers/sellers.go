package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/tradepost/tradepost/internal/listing"
	"github.com/tradepost/tradepost/internal/store"
	domain "github.com/tradepost/tradepost/pkg/types"
)

// SellersHandler handles the seller-facing marketplace endpoints.
type SellersHandler struct {
	svc *listing.Service
}

// NewSellersHandler creates a new SellersHandler.
func NewSellersHandler(svc *listing.Service) *SellersHandler {
	return &SellersHandler{svc: svc}
}

// --- Input/Output types ---

// ListNewItemInput is the input for listing an item for sale. All fields are
// schema-optional so the service can run its checks in order; a missing token
// is an authentication failure, not a schema violation.
type ListNewItemInput struct {
	Body struct {
		Token     string               `json:"token"           required:"false" doc:"Seller auth token"`
		Type      domain.CategoryCode  `json:"type"            required:"false" doc:"Item category code (-2..6, excluding 0)"`
		Name      string               `json:"name"            required:"false" doc:"Item name"`
		Image     string               `json:"image,omitempty"                  doc:"Image URL"`
		Condition domain.ConditionCode `json:"condition"       required:"false" doc:"Condition grade (1..5)"`
		Price     float64              `json:"price"           required:"false" doc:"Asking price"`
	}
}

// ListNewItemOutput is the response for a successful listing: the generated
// item identifier.
type ListNewItemOutput struct {
	Body struct {
		ID int64 `json:"id" doc:"Generated item identifier"`
	}
}

// GetByIDInput is the input for fetching a single item.
type GetByIDInput struct {
	ID int64 `path:"id" doc:"Item identifier"`
}

// GetByIDOutput is the response for fetching a single item.
type GetByIDOutput struct {
	Body domain.Item
}

// GetBySearchInput is the input for searching items by name.
type GetBySearchInput struct {
	Body struct {
		Search string `json:"search" doc:"Name substring to match, case-insensitively"`
	}
}

// GetBySearchOutput is the response for a name search.
type GetBySearchOutput struct {
	Body []domain.Item
}

// GetByCategoryInput is the input for listing items in a category.
type GetByCategoryInput struct {
	Type int64 `path:"type" doc:"Category code (-2..6, excluding 0)"`
}

// GetByCategoryOutput is the response for a category listing.
type GetByCategoryOutput struct {
	Body []domain.Item
}

// ListItemsInput is the input for the filtered item listing.
type ListItemsInput struct {
	Category  int64   `query:"category"  doc:"Filter by category code"`
	Condition int64   `query:"condition" doc:"Filter by condition grade"`
	Seller    string  `query:"seller"    doc:"Filter by seller username"`
	MaxPrice  float64 `query:"max_price" doc:"Maximum price"                    minimum:"0"`
	Limit     int     `query:"limit"     doc:"Number of results (default 50)"  minimum:"1" maximum:"500"`
	Offset    int     `query:"offset"    doc:"Pagination offset"               minimum:"0"`
	OrderBy   string  `query:"order_by"  doc:"Sort field"                      enum:"price,listed_at,"`
}

// ListItemsOutput is the response for the filtered item listing.
type ListItemsOutput struct {
	Body struct {
		Items  []domain.Item `json:"items"`
		Total  int           `json:"total"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}
}

// --- Handlers ---

// ListNewItem authenticates the seller by token and puts an item up for sale.
func (h *SellersHandler) ListNewItem(
	ctx context.Context,
	input *ListNewItemInput,
) (*ListNewItemOutput, error) {
	req := &domain.SellRequest{
		Token:     input.Body.Token,
		Type:      input.Body.Type,
		Name:      input.Body.Name,
		Image:     input.Body.Image,
		Condition: input.Body.Condition,
		Price:     input.Body.Price,
	}

	it, err := h.svc.ListNewItem(ctx, req)
	if err != nil {
		return nil, mapServiceError(err)
	}

	resp := &ListNewItemOutput{}
	resp.Body.ID = it.ID
	return resp, nil
}

// GetByID returns a single item by its identifier.
func (h *SellersHandler) GetByID(
	ctx context.Context,
	input *GetByIDInput,
) (*GetByIDOutput, error) {
	it, err := h.svc.GetByID(ctx, input.ID)
	if err != nil {
		return nil, mapServiceError(err)
	}

	return &GetByIDOutput{Body: *it}, nil
}

// GetBySearch returns all items whose name contains the search text.
func (h *SellersHandler) GetBySearch(
	ctx context.Context,
	input *GetBySearchInput,
) (*GetBySearchOutput, error) {
	items, err := h.svc.Search(ctx, input.Body.Search)
	if err != nil {
		return nil, mapServiceError(err)
	}

	return &GetBySearchOutput{Body: items}, nil
}

// GetByCategory returns all items in the given category, newest first.
// The path parameter is range-checked here so an out-of-range code is a 400,
// never a silent int16 wraparound.
func (h *SellersHandler) GetByCategory(
	ctx context.Context,
	input *GetByCategoryInput,
) (*GetByCategoryOutput, error) {
	if input.Type < math.MinInt16 || input.Type > math.MaxInt16 {
		return nil, huma.Error400BadRequest("item category out of range")
	}

	items, err := h.svc.ByCategory(ctx, domain.CategoryCode(input.Type))
	if err != nil {
		return nil, mapServiceError(err)
	}

	return &GetByCategoryOutput{Body: items}, nil
}

// ListItems returns items with optional filters and pagination.
func (h *SellersHandler) ListItems(
	ctx context.Context,
	input *ListItemsInput,
) (*ListItemsOutput, error) {
	q := &store.ItemQuery{
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Category != 0 {
		cat := domain.CategoryCode(input.Category)
		q.Category = &cat
	}

	if input.Condition != 0 {
		cond := domain.ConditionCode(input.Condition)
		q.Condition = &cond
	}

	if input.Seller != "" {
		q.Seller = &input.Seller
	}

	if input.MaxPrice != 0 {
		q.MaxPrice = &input.MaxPrice
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	items, total, err := h.svc.List(ctx, q)
	if err != nil {
		return nil, mapServiceError(err)
	}

	resp := &ListItemsOutput{}
	resp.Body.Items = items
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// mapServiceError translates service sentinels into HTTP errors.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, listing.ErrAuthentication):
		return huma.Error401Unauthorized(err.Error())
	case errors.Is(err, listing.ErrValidation):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, listing.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	default:
		return huma.Error500InternalServerError("request failed: " + err.Error())
	}
}

// RegisterSellerRoutes registers the seller endpoints with the Huma API.
func RegisterSellerRoutes(api huma.API, h *SellersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-new-item",
		Method:      http.MethodPost,
		Path:        "/api/Sellers/ListNewItem",
		Summary:     "List an item for sale",
		Description: "Authenticates the seller by token and stores a new item.",
		Tags:        []string{"sellers"},
		Errors:      []int{http.StatusBadRequest, http.StatusUnauthorized},
	}, h.ListNewItem)

	huma.Register(api, huma.Operation{
		OperationID: "get-by-id",
		Method:      http.MethodGet,
		Path:        "/api/Sellers/GetById/{id}",
		Summary:     "Get an item by ID",
		Description: "Returns a single item by its identifier.",
		Tags:        []string{"sellers"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetByID)

	huma.Register(api, huma.Operation{
		OperationID: "get-by-search",
		Method:      http.MethodPut,
		Path:        "/api/Sellers/GetBySearch",
		Summary:     "Search items by name",
		Description: "Returns all items whose name contains the search text, case-insensitively.",
		Tags:        []string{"sellers"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetBySearch)

	huma.Register(api, huma.Operation{
		OperationID: "get-by-category",
		Method:      http.MethodGet,
		Path:        "/api/Sellers/GetByCategory/{type}",
		Summary:     "List items in a category",
		Description: "Returns all items in the given category, newest first.",
		Tags:        []string{"sellers"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.GetByCategory)

	huma.Register(api, huma.Operation{
		OperationID: "list-items",
		Method:      http.MethodGet,
		Path:        "/api/Sellers/ListItems",
		Summary:     "List items",
		Description: "Returns items with optional filters and pagination.",
		Tags:        []string{"sellers"},
	}, h.ListItems)
}
