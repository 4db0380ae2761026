// Package store defines the datastore abstraction for tradepost.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"

	domain "github.com/tradepost/tradepost/pkg/types"
)

// ItemQuery defines optional filters for item listing queries.
type ItemQuery struct {
	Category  *domain.CategoryCode
	Condition *domain.ConditionCode
	Seller    *string
	MaxPrice  *float64
	Limit     int // default 50
	Offset    int
	OrderBy   string // "price", "listed_at"
}

// Store defines all data access operations for tradepost.
type Store interface {
	// Items
	InsertItem(ctx context.Context, it *domain.Item) error
	GetItem(ctx context.Context, id int64) (*domain.Item, error)
	SearchItems(ctx context.Context, text string) ([]domain.Item, error)
	ListItemsByCategory(ctx context.Context, category domain.CategoryCode) ([]domain.Item, error)
	ListItems(ctx context.Context, opts *ItemQuery) ([]domain.Item, int, error)

	// Auth tokens (externally owned, read-only here)
	GetAuthToken(ctx context.Context, token string) (*domain.AuthToken, error)

	// Stats
	CountItems(ctx context.Context) (int, error)
	CountItemsByCategory(ctx context.Context) (map[domain.CategoryCode]int, error)
	CountActiveTokens(ctx context.Context) (int, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
