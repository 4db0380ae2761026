package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/tradepost/tradepost/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
// The pool is created once at startup and shared across requests.
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	return NewPostgresStoreWithPoolSize(ctx, connString, defaultPoolSize)
}

// NewPostgresStoreWithPoolSize creates a PostgresStore with an explicit
// maximum pool size.
func NewPostgresStoreWithPoolSize(
	ctx context.Context,
	connString string,
	poolSize int,
) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	cfg.MaxConns = int32(poolSize)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// InsertItem inserts a new item row. The caller supplies the generated id;
// no uniqueness check beyond the primary key is performed.
func (s *PostgresStore) InsertItem(ctx context.Context, it *domain.Item) error {
	args := pgx.NamedArgs{
		"id":        it.ID,
		"type":      it.Type,
		"name":      it.Name,
		"seller":    it.Seller,
		"image":     it.Image,
		"condition": it.Condition,
		"price":     it.Price,
	}

	if err := s.pool.QueryRow(ctx, queryInsertItem, args).Scan(&it.ListedAt); err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}
	return nil
}

// GetItem retrieves an item by its identifier.
// Returns pgx.ErrNoRows when no item matches.
func (s *PostgresStore) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	it := &domain.Item{}
	if err := scanItem(s.pool.QueryRow(ctx, queryGetItemByID, id), it); err != nil {
		return nil, err
	}
	return it, nil
}

// SearchItems returns items whose name contains the given text,
// case-insensitively. An empty result is returned as a nil slice, not an error.
func (s *PostgresStore) SearchItems(ctx context.Context, text string) ([]domain.Item, error) {
	return s.queryItems(ctx, querySearchItems, SearchPattern(text))
}

// ListItemsByCategory returns all items of the given category, newest first.
func (s *PostgresStore) ListItemsByCategory(
	ctx context.Context,
	category domain.CategoryCode,
) ([]domain.Item, error) {
	return s.queryItems(ctx, queryListItemsByCategory, category)
}

// ListItems queries items with optional filters, returning results and total count.
func (s *PostgresStore) ListItems(
	ctx context.Context,
	opts *ItemQuery,
) ([]domain.Item, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting items: %w", err)
	}

	items, err := s.queryItems(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// GetAuthToken retrieves an auth token row by its token value.
// Returns pgx.ErrNoRows when the token is unknown; expiry checking is the
// caller's concern.
func (s *PostgresStore) GetAuthToken(
	ctx context.Context,
	token string,
) (*domain.AuthToken, error) {
	t := &domain.AuthToken{}
	err := s.pool.QueryRow(ctx, queryGetAuthToken, token).Scan(
		&t.Token, &t.Username, &t.Expiry,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// InsertAuthToken writes a token row. The authentication subsystem owns this
// table in production; this method exists for dev seeding and tests and is
// deliberately not part of the Store interface.
func (s *PostgresStore) InsertAuthToken(ctx context.Context, t *domain.AuthToken) error {
	if _, err := s.pool.Exec(ctx, queryInsertAuthToken, t.Token, t.Username, t.Expiry); err != nil {
		return fmt.Errorf("inserting auth token: %w", err)
	}
	return nil
}

// CountItems returns the total number of items.
func (s *PostgresStore) CountItems(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, queryCountItems).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}
	return count, nil
}

// CountItemsByCategory returns item counts grouped by category code.
func (s *PostgresStore) CountItemsByCategory(
	ctx context.Context,
) (map[domain.CategoryCode]int, error) {
	rows, err := s.pool.Query(ctx, queryCountItemsByCategory)
	if err != nil {
		return nil, fmt.Errorf("counting items by category: %w", err)
	}
	defer rows.Close()

	result := make(map[domain.CategoryCode]int)
	for rows.Next() {
		var category domain.CategoryCode
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("scanning category count: %w", err)
		}
		result[category] = count
	}

	return result, rows.Err()
}

// CountActiveTokens returns the number of unexpired auth tokens.
func (s *PostgresStore) CountActiveTokens(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, queryCountActiveTokens).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting active tokens: %w", err)
	}
	return count, nil
}

// queryItems is a helper for item queries.
func (s *PostgresStore) queryItems(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Item, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanItem scans a full item row.
func scanItem(row scannable, it *domain.Item) error {
	return row.Scan(
		&it.ID, &it.Type, &it.Name, &it.Seller,
		&it.Image, &it.Condition, &it.Price, &it.ListedAt,
	)
}
