package listing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	storeMocks "github.com/tradepost/tradepost/internal/store/mocks"
	"github.com/tradepost/tradepost/pkg/logger"
	domain "github.com/tradepost/tradepost/pkg/types"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *storeMocks.MockStore) {
	t.Helper()
	st := storeMocks.NewMockStore(t)
	svc := NewService(st, logger.Nop())
	svc.now = func() time.Time { return testNow }
	return svc, st
}

func validToken() *domain.AuthToken {
	return &domain.AuthToken{
		Token:    "tok-123",
		Username: "alice",
		Expiry:   testNow.Add(time.Hour),
	}
}

func validSellRequest() *domain.SellRequest {
	return &domain.SellRequest{
		Token:     "tok-123",
		Type:      domain.CategoryElectronics,
		Name:      "PowerEdge R740",
		Image:     "https://img.example/r740.jpg",
		Condition: domain.ConditionGood,
		Price:     499.99,
	}
}

func TestListNewItem(t *testing.T) {
	t.Parallel()

	t.Run("lists a valid item", func(t *testing.T) {
		t.Parallel()
		svc, st := newTestService(t)

		st.EXPECT().GetAuthToken(mock.Anything, "tok-123").
			Return(validToken(), nil).Once()

		var stored *domain.Item
		st.EXPECT().InsertItem(mock.Anything, mock.Anything).
			Run(func(_ context.Context, it *domain.Item) { stored = it }).
			Return(nil).Once()

		it, err := svc.ListNewItem(context.Background(), validSellRequest())
		require.NoError(t, err)
		require.NotNil(t, it)
		assert.Same(t, stored, it)

		assert.Equal(t, "alice", it.Seller, "seller must come from the token")
		assert.Equal(t, domain.CategoryElectronics, it.Type)
		assert.Equal(t, "PowerEdge R740", it.Name)
		assert.Equal(t, "https://img.example/r740.jpg", it.Image)
		assert.Equal(t, domain.ConditionGood, it.Condition)
		assert.Equal(t, 499.99, it.Price)
		assert.GreaterOrEqual(t, it.ID, int64(0))
	})

	t.Run("defaults a missing image", func(t *testing.T) {
		t.Parallel()
		svc, st := newTestService(t)

		st.EXPECT().GetAuthToken(mock.Anything, "tok-123").
			Return(validToken(), nil).Once()
		st.EXPECT().InsertItem(mock.Anything, mock.Anything).
			Return(nil).Once()

		req := validSellRequest()
		req.Image = ""

		it, err := svc.ListNewItem(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, domain.ImageNone, it.Image)
	})

	t.Run("rounds the price half away from zero", func(t *testing.T) {
		t.Parallel()

		prices := map[float64]float64{
			19.995:  20.00,
			19.994:  19.99,
			9.995:   10.00,
			0.005:   0.01,
			100:     100,
			12.3456: 12.35,
		}
		for in, want := range prices {
			svc, st := newTestService(t)
			st.EXPECT().GetAuthToken(mock.Anything, "tok-123").
				Return(validToken(), nil).Once()
			st.EXPECT().InsertItem(mock.Anything, mock.Anything).
				Return(nil).Once()

			req := validSellRequest()
			req.Price = in

			it, err := svc.ListNewItem(context.Background(), req)
			require.NoError(t, err)
			assert.InDelta(t, want, it.Price, 1e-9, "price %v", in)
		}
	})

	t.Run("propagates storage failures", func(t *testing.T) {
		t.Parallel()
		svc, st := newTestService(t)

		st.EXPECT().GetAuthToken(mock.Anything, "tok-123").
			Return(validToken(), nil).Once()
		st.EXPECT().InsertItem(mock.Anything, mock.Anything).
			Return(errors.New("connection refused")).Once()

		_, err := svc.ListNewItem(context.Background(), validSellRequest())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrValidation)
		assert.NotErrorIs(t, err, ErrAuthentication)
	})
}

func TestListNewItemAuthentication(t *testing.T) {
	t.Parallel()

	t.Run("rejects a missing token without a lookup", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)

		req := validSellRequest()
		req.Token = ""

		_, err := svc.ListNewItem(context.Background(), req)
		assert.ErrorIs(t, err, ErrAuthentication)
	})

	t.Run("rejects an unknown token", func(t *testing.T) {
		t.Parallel()
		svc, st := newTestService(t)

		st.EXPECT().GetAuthToken(mock.Anything, "tok-123").
			Return(nil, pgx.ErrNoRows).Once()

		_, err := svc.ListNewItem(context.Background(), validSellRequest())
		assert.ErrorIs(t, err, ErrAuthentication)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		t.Parallel()
		svc, st := newTestService(t)

		tok := validToken()
		tok.Expiry = testNow.Add(-time.Minute)
		st.EXPECT().GetAuthToken(mock.Anything, "tok-123").
			Return(tok, nil).Once()

		_, err := svc.ListNewItem(context.Background(), validSellRequest())
		assert.ErrorIs(t, err, ErrAuthentication)
	})

	t.Run("a token expiring exactly now is expired", func(t *testing.T) {
		t.Parallel()
		svc, st := newTestService(t)

		tok := validToken()
		tok.Expiry = testNow
		st.EXPECT().GetAuthToken(mock.Anything, "tok-123").
			Return(tok, nil).Once()

		_, err := svc.ListNewItem(context.Background(), validSellRequest())
		assert.ErrorIs(t, err, ErrAuthentication)
	})

	t.Run("a missing token is reported before invalid fields", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)

		req := validSellRequest()
		req.Token = ""
		req.Name = "" // also invalid, but the presence check comes first

		_, err := svc.ListNewItem(context.Background(), req)
		assert.ErrorIs(t, err, ErrAuthentication)
	})

	t.Run("invalid fields are reported before the token lookup", func(t *testing.T) {
		t.Parallel()

		// No GetAuthToken expectation: a request with a bad field must fail
		// validation without ever hitting the store, even if the token would
		// not resolve.
		svc, _ := newTestService(t)

		req := validSellRequest()
		req.Type = domain.CategoryUnset

		_, err := svc.ListNewItem(context.Background(), req)
		assert.ErrorIs(t, err, ErrValidation)
		assert.NotErrorIs(t, err, ErrAuthentication)
	})
}

func TestListNewItemValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*domain.SellRequest)
	}{
		{
			name:   "category above range",
			mutate: func(r *domain.SellRequest) { r.Type = 7 },
		},
		{
			name:   "category below range",
			mutate: func(r *domain.SellRequest) { r.Type = -3 },
		},
		{
			name:   "category zero is never valid",
			mutate: func(r *domain.SellRequest) { r.Type = domain.CategoryUnset },
		},
		{
			name:   "empty name",
			mutate: func(r *domain.SellRequest) { r.Name = "" },
		},
		{
			name:   "condition zero",
			mutate: func(r *domain.SellRequest) { r.Condition = domain.ConditionUnset },
		},
		{
			name:   "condition above range",
			mutate: func(r *domain.SellRequest) { r.Condition = 6 },
		},
		{
			name:   "negative price",
			mutate: func(r *domain.SellRequest) { r.Price = -1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Field checks run before the token lookup, so no store calls
			// are expected for any of these.
			svc, _ := newTestService(t)

			req := validSellRequest()
			tt.mutate(req)

			_, err := svc.ListNewItem(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestGetByID(t *testing.T) {
	t.Parallel()

	t.Run("returns the item", func(t *testing.T) {
		t.Parallel()
		svc, st := newTestService(t)

		want := &domain.Item{ID: 42, Name: "R740"}
		st.EXPECT().GetItem(mock.Anything, int64(42)).
			Return(want, nil).Once()

		got, err := svc.GetByID(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("maps no rows to not found", func(t *testing.T) {
		t.Parallel()
		svc, st := newTestService(t)

		st.EXPECT().GetItem(mock.Anything, int64(42)).
			Return(nil, pgx.ErrNoRows).Once()

		_, err := svc.GetByID(context.Background(), 42)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("propagates other errors", func(t *testing.T) {
		t.Parallel()
		svc, st := newTestService(t)

		st.EXPECT().GetItem(mock.Anything, int64(42)).
			Return(nil, errors.New("timeout")).Once()

		_, err := svc.GetByID(context.Background(), 42)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("returns matches", func(t *testing.T) {
		t.Parallel()
		svc, st := newTestService(t)

		want := []domain.Item{{ID: 1, Name: "Dell R740"}, {ID: 2, Name: "r740 rails"}}
		st.EXPECT().SearchItems(mock.Anything, "r740").
			Return(want, nil).Once()

		got, err := svc.Search(context.Background(), "r740")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty result is not found", func(t *testing.T) {
		t.Parallel()
		svc, st := newTestService(t)

		st.EXPECT().SearchItems(mock.Anything, "nothing").
			Return(nil, nil).Once()

		_, err := svc.Search(context.Background(), "nothing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestByCategory(t *testing.T) {
	t.Parallel()

	t.Run("returns items in the category", func(t *testing.T) {
		t.Parallel()
		svc, st := newTestService(t)

		want := []domain.Item{{ID: 1, Type: domain.CategoryBooks}}
		st.EXPECT().ListItemsByCategory(mock.Anything, domain.CategoryBooks).
			Return(want, nil).Once()

		got, err := svc.ByCategory(context.Background(), domain.CategoryBooks)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("rejects out of range codes without querying", func(t *testing.T) {
		t.Parallel()

		for _, code := range []domain.CategoryCode{-3, 0, 7, 100} {
			svc, _ := newTestService(t)
			_, err := svc.ByCategory(context.Background(), code)
			assert.ErrorIs(t, err, ErrValidation, "code %d", code)
		}
	})

	t.Run("empty category is not found", func(t *testing.T) {
		t.Parallel()
		svc, st := newTestService(t)

		st.EXPECT().ListItemsByCategory(mock.Anything, domain.CategoryFree).
			Return(nil, nil).Once()

		_, err := svc.ByCategory(context.Background(), domain.CategoryFree)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestNewItemID(t *testing.T) {
	t.Parallel()

	seen := make(map[int64]bool)
	for range 100 {
		id := newItemID()
		assert.GreaterOrEqual(t, id, int64(0))
		assert.False(t, seen[id], "duplicate id %d in 100 draws", id)
		seen[id] = true
	}
}
