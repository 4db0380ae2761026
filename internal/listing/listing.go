// Package listing implements the marketplace listing workflows: putting an
// item up for sale and the read paths used to find items again.
package listing

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tradepost/tradepost/internal/metrics"
	"github.com/tradepost/tradepost/internal/store"
	domain "github.com/tradepost/tradepost/pkg/types"
)

// Sentinel errors returned by the service. Handlers translate these into
// HTTP statuses; everything else is treated as an internal error.
var (
	ErrAuthentication = errors.New("authentication failed")
	ErrValidation     = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
)

// Failure reasons for the listing_failures_total counter.
const (
	reasonAuth       = "auth"
	reasonValidation = "validation"
	reasonStorage    = "storage"
)

// Service implements the listing workflows on top of a Store.
type Service struct {
	store store.Store
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a listing service.
func NewService(st store.Store, log *slog.Logger) *Service {
	return &Service{
		store: st,
		log:   log,
		now:   time.Now,
	}
}

// ListNewItem validates a sell request, authenticates the seller by token,
// and stores the item. The seller identity always comes from the token row,
// never from the request body. Checks run in a fixed order so the first
// failure wins: token presence, category, name, condition, price, and only
// then the token lookup and expiry check. The store is never queried for a
// request with a bad field.
func (s *Service) ListNewItem(ctx context.Context, req *domain.SellRequest) (*domain.Item, error) {
	if req.Token == "" {
		metrics.ListingFailuresTotal.WithLabelValues(reasonAuth).Inc()
		return nil, fmt.Errorf("%w: missing token", ErrAuthentication)
	}

	if err := validateSellRequest(req); err != nil {
		metrics.ListingFailuresTotal.WithLabelValues(reasonValidation).Inc()
		return nil, err
	}

	tok, err := s.authenticate(ctx, req.Token)
	if err != nil {
		if errors.Is(err, ErrAuthentication) {
			metrics.ListingFailuresTotal.WithLabelValues(reasonAuth).Inc()
		} else {
			metrics.ListingFailuresTotal.WithLabelValues(reasonStorage).Inc()
		}
		return nil, err
	}

	image := req.Image
	if image == "" {
		image = domain.ImageNone
	}

	it := &domain.Item{
		ID:        newItemID(),
		Type:      req.Type,
		Name:      req.Name,
		Seller:    tok.Username,
		Image:     image,
		Condition: req.Condition,
		Price:     domain.RoundPrice(req.Price),
	}

	if err := s.store.InsertItem(ctx, it); err != nil {
		metrics.ListingFailuresTotal.WithLabelValues(reasonStorage).Inc()
		return nil, fmt.Errorf("storing item: %w", err)
	}

	metrics.ItemsListedTotal.Inc()
	s.log.Info("item listed",
		"id", it.ID,
		"seller", it.Seller,
		"category", it.Type.String(),
		"price", it.Price,
	)

	return it, nil
}

// GetByID returns a single item, or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	it, err := s.store.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: item %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("fetching item %d: %w", id, err)
	}
	return it, nil
}

// Search returns items whose name contains the given text, case-insensitively.
// An empty result set is ErrNotFound, matching the API contract.
func (s *Service) Search(ctx context.Context, text string) ([]domain.Item, error) {
	items, err := s.store.SearchItems(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items matching %q", ErrNotFound, text)
	}
	return items, nil
}

// ByCategory returns all items in a category, newest first. Unknown category
// codes are ErrValidation; an empty result set is ErrNotFound.
func (s *Service) ByCategory(ctx context.Context, category domain.CategoryCode) ([]domain.Item, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: item category %d out of range", ErrValidation, category)
	}

	items, err := s.store.ListItemsByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("listing items by category: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items in category %s", ErrNotFound, category)
	}
	return items, nil
}

// List queries items with optional filters, returning results and total count.
func (s *Service) List(ctx context.Context, opts *store.ItemQuery) ([]domain.Item, int, error) {
	items, total, err := s.store.ListItems(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("listing items: %w", err)
	}
	return items, total, nil
}

// authenticate resolves a bearer token to its row and rejects expired or
// unknown tokens. The caller has already checked the token is non-empty.
func (s *Service) authenticate(ctx context.Context, token string) (*domain.AuthToken, error) {
	tok, err := s.store.GetAuthToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: unknown token", ErrAuthentication)
		}
		return nil, fmt.Errorf("fetching auth token: %w", err)
	}

	if tok.Expired(s.now()) {
		return nil, fmt.Errorf("%w: token expired", ErrAuthentication)
	}

	return tok, nil
}

// validateSellRequest checks the item fields in their fixed order.
func validateSellRequest(req *domain.SellRequest) error {
	if !req.Type.Valid() {
		return fmt.Errorf("%w: item category %d out of range", ErrValidation, req.Type)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if !req.Condition.Valid() {
		return fmt.Errorf("%w: unknown item condition %d", ErrValidation, req.Condition)
	}
	if req.Price < 0 || math.IsNaN(req.Price) || math.IsInf(req.Price, 0) {
		return fmt.Errorf("%w: price must be a non-negative number", ErrValidation)
	}
	return nil
}

// newItemID draws a random non-negative int64 identifier. MinInt64 has no
// positive counterpart, so that single value is redrawn rather than negated.
func newItemID() int64 {
	var buf [8]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			// crypto/rand never fails on supported platforms.
			panic(fmt.Sprintf("reading random bytes: %v", err))
		}
		id := int64(binary.BigEndian.Uint64(buf[:]))
		if id == math.MinInt64 {
			continue
		}
		if id < 0 {
			id = -id
		}
		return id
	}
}
