package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByPrice    = "price"
	orderByListedAt = "listed_at"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByPrice:    "price ASC",
	orderByListedAt: "listed_at DESC",
}

const defaultOrderBy = "listed_at DESC"

const baseItemsSelect = `SELECT id, type, name, seller, image, condition, price, listed_at
FROM items`

const countItemsSelect = "SELECT COUNT(*) FROM items"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an item query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *ItemQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Category != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", paramIdx))
		args = append(args, *q.Category)
		paramIdx++
	}

	if q.Condition != nil {
		conditions = append(conditions, fmt.Sprintf("condition = $%d", paramIdx))
		args = append(args, *q.Condition)
		paramIdx++
	}

	if q.Seller != nil {
		conditions = append(conditions, fmt.Sprintf("seller = $%d", paramIdx))
		args = append(args, *q.Seller)
		paramIdx++
	}

	if q.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price <= $%d", paramIdx))
		args = append(args, *q.MaxPrice)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Order by
	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	// Limit
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseItemsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countItemsSelect + whereClause

	return dataSQL, countSQL, args
}

// likeEscaper neutralizes LIKE metacharacters in user-supplied search text.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchPattern builds the ILIKE pattern for a substring match on the given
// text. Wildcards surround the escaped text inside the bound parameter, so
// the SQL itself stays free of user input.
func SearchPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}
