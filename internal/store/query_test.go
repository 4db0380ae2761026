package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/tradepost/tradepost/pkg/types"
)

func TestItemQueryToSQL(t *testing.T) {
	t.Parallel()

	t.Run("no filters uses defaults", func(t *testing.T) {
		t.Parallel()

		q := &ItemQuery{}
		dataSQL, countSQL, args := q.ToSQL()

		assert.Empty(t, args)
		assert.NotContains(t, dataSQL, "WHERE")
		assert.Contains(t, dataSQL, "ORDER BY listed_at DESC")
		assert.Contains(t, dataSQL, "LIMIT 50 OFFSET 0")
		assert.Equal(t, "SELECT COUNT(*) FROM items", countSQL)
	})

	t.Run("all filters numbered in order", func(t *testing.T) {
		t.Parallel()

		category := domain.CategoryElectronics
		condition := domain.ConditionGood
		seller := "alice"
		maxPrice := 500.0

		q := &ItemQuery{
			Category:  &category,
			Condition: &condition,
			Seller:    &seller,
			MaxPrice:  &maxPrice,
			Limit:     10,
			Offset:    20,
			OrderBy:   "price",
		}
		dataSQL, countSQL, args := q.ToSQL()

		assert.Equal(t, []any{category, condition, seller, maxPrice}, args)
		assert.Contains(t, dataSQL, "type = $1")
		assert.Contains(t, dataSQL, "condition = $2")
		assert.Contains(t, dataSQL, "seller = $3")
		assert.Contains(t, dataSQL, "price <= $4")
		assert.Contains(t, dataSQL, "ORDER BY price ASC")
		assert.Contains(t, dataSQL, "LIMIT 10 OFFSET 20")
		assert.Contains(t, countSQL, "WHERE")
		assert.NotContains(t, countSQL, "ORDER BY")
		assert.NotContains(t, countSQL, "LIMIT")
	})

	t.Run("sparse filters renumber parameters", func(t *testing.T) {
		t.Parallel()

		seller := "bob"
		maxPrice := 25.0

		q := &ItemQuery{Seller: &seller, MaxPrice: &maxPrice}
		dataSQL, _, args := q.ToSQL()

		assert.Equal(t, []any{seller, maxPrice}, args)
		assert.Contains(t, dataSQL, "seller = $1")
		assert.Contains(t, dataSQL, "price <= $2")
	})

	t.Run("limit is clamped", func(t *testing.T) {
		t.Parallel()

		q := &ItemQuery{Limit: 10000}
		dataSQL, _, _ := q.ToSQL()
		assert.Contains(t, dataSQL, "LIMIT 500")

		q = &ItemQuery{Limit: -5, Offset: -3}
		dataSQL, _, _ = q.ToSQL()
		assert.Contains(t, dataSQL, "LIMIT 50 OFFSET 0")
	})

	t.Run("unknown order by falls back to default", func(t *testing.T) {
		t.Parallel()

		q := &ItemQuery{OrderBy: "seller; DROP TABLE items"}
		dataSQL, _, _ := q.ToSQL()
		assert.Contains(t, dataSQL, "ORDER BY listed_at DESC")
	})
}

func TestSearchPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "r740", "%r740%"},
		{"empty matches everything", "", "%%"},
		{"percent escaped", "100% wool", `%100\% wool%`},
		{"underscore escaped", "a_b", `%a\_b%`},
		{"backslash escaped", `a\b`, `%a\\b%`},
		{"mixed metacharacters", `50%_\`, `%50\%\_\\%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SearchPattern(tt.in))
		})
	}
}
