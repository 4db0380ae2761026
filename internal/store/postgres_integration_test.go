//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tradepost/tradepost/internal/store"
	domain "github.com/tradepost/tradepost/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("tradepost_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testItem(id int64) *domain.Item {
	return &domain.Item{
		ID:        id,
		Type:      domain.CategoryElectronics,
		Name:      "Dell PowerEdge R740",
		Seller:    "alice",
		Image:     domain.ImageNone,
		Condition: domain.ConditionGood,
		Price:     499.99,
	}
}

func insertToken(t *testing.T, s *store.PostgresStore, token, username string, expiry time.Time) {
	t.Helper()
	require.NoError(t, s.InsertAuthToken(context.Background(), &domain.AuthToken{
		Token:    token,
		Username: username,
		Expiry:   expiry,
	}))
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_Migrate_Idempotent(t *testing.T) {
	s := setupPostgres(t)
	// Second run must be a no-op.
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_InsertAndGetItem(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	it := testItem(42)
	require.NoError(t, s.InsertItem(ctx, it))
	assert.False(t, it.ListedAt.IsZero(), "insert should backfill listed_at")

	got, err := s.GetItem(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, it.ID, got.ID)
	assert.Equal(t, it.Name, got.Name)
	assert.Equal(t, it.Seller, got.Seller)
	assert.Equal(t, it.Type, got.Type)
	assert.Equal(t, it.Condition, got.Condition)
	assert.InDelta(t, it.Price, got.Price, 1e-9)
}

func TestPostgresStore_GetItem_NotFound(t *testing.T) {
	s := setupPostgres(t)

	_, err := s.GetItem(context.Background(), 999)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestPostgresStore_SearchItems(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	first := testItem(1)
	first.Name = "Dell PowerEdge R740"
	require.NoError(t, s.InsertItem(ctx, first))

	second := testItem(2)
	second.Name = "r740 rail kit"
	require.NoError(t, s.InsertItem(ctx, second))

	third := testItem(3)
	third.Name = "100% wool blanket"
	require.NoError(t, s.InsertItem(ctx, third))

	t.Run("case-insensitive substring match", func(t *testing.T) {
		items, err := s.SearchItems(ctx, "R740")
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("LIKE metacharacters are literal", func(t *testing.T) {
		items, err := s.SearchItems(ctx, "100%")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(3), items[0].ID)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		items, err := s.SearchItems(ctx, "nothing here")
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestPostgresStore_ListItemsByCategory(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	book := testItem(1)
	book.Type = domain.CategoryBooks
	require.NoError(t, s.InsertItem(ctx, book))

	laptop := testItem(2)
	laptop.Type = domain.CategoryElectronics
	require.NoError(t, s.InsertItem(ctx, laptop))

	items, err := s.ListItemsByCategory(ctx, domain.CategoryBooks)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ID)

	items, err = s.ListItemsByCategory(ctx, domain.CategoryFree)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPostgresStore_ListItems(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		it := testItem(i)
		it.Price = float64(i) * 100
		if i%2 == 0 {
			it.Seller = "bob"
		}
		require.NoError(t, s.InsertItem(ctx, it))
	}

	seller := "bob"
	items, total, err := s.ListItems(ctx, &store.ItemQuery{Seller: &seller})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, items, 2)

	maxPrice := 300.0
	items, total, err = s.ListItems(ctx, &store.ItemQuery{
		MaxPrice: &maxPrice,
		OrderBy:  "price",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 3)
	assert.InDelta(t, 100.0, items[0].Price, 1e-9)
}

func TestPostgresStore_AuthTokens(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	insertToken(t, s, "tok-live", "alice", time.Now().Add(time.Hour))
	insertToken(t, s, "tok-dead", "bob", time.Now().Add(-time.Hour))

	t.Run("get known token", func(t *testing.T) {
		tok, err := s.GetAuthToken(ctx, "tok-live")
		require.NoError(t, err)
		assert.Equal(t, "alice", tok.Username)
	})

	t.Run("unknown token is pgx.ErrNoRows", func(t *testing.T) {
		_, err := s.GetAuthToken(ctx, "tok-unknown")
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("expired token is still returned", func(t *testing.T) {
		tok, err := s.GetAuthToken(ctx, "tok-dead")
		require.NoError(t, err)
		assert.True(t, tok.Expired(time.Now()))
	})

	t.Run("count active tokens", func(t *testing.T) {
		count, err := s.CountActiveTokens(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestPostgresStore_Counts(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	book := testItem(1)
	book.Type = domain.CategoryBooks
	require.NoError(t, s.InsertItem(ctx, book))

	for i := int64(2); i <= 3; i++ {
		require.NoError(t, s.InsertItem(ctx, testItem(i)))
	}

	total, err := s.CountItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	byCategory, err := s.CountItemsByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, byCategory[domain.CategoryBooks])
	assert.Equal(t, 2, byCategory[domain.CategoryElectronics])
}
