package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Item queries.
const (
	queryInsertItem = `
		INSERT INTO items (
			id, type, name, seller, image, condition, price, listed_at
		) VALUES (
			@id, @type, @name, @seller, @image, @condition, @price, now()
		)
		RETURNING listed_at`

	queryGetItemByID = `
		SELECT id, type, name, seller, image, condition, price, listed_at
		FROM items
		WHERE id = $1`

	// The wildcard pattern is built in Go and bound as the parameter;
	// user input never reaches the SQL text.
	querySearchItems = `
		SELECT id, type, name, seller, image, condition, price, listed_at
		FROM items
		WHERE name ILIKE $1 ESCAPE '\'
		ORDER BY listed_at DESC`

	queryListItemsByCategory = `
		SELECT id, type, name, seller, image, condition, price, listed_at
		FROM items
		WHERE type = $1
		ORDER BY listed_at DESC`

	queryCountItems = `SELECT COUNT(*) FROM items`

	queryCountItemsByCategory = `
		SELECT type, COUNT(*)
		FROM items
		GROUP BY type`
)

// Auth token queries.
const (
	queryGetAuthToken = `
		SELECT token, username, expiry
		FROM auth_tokens
		WHERE token = $1`

	// Dev seeding and tests only; the auth subsystem owns this table.
	queryInsertAuthToken = `
		INSERT INTO auth_tokens (token, username, expiry)
		VALUES ($1, $2, $3)`

	queryCountActiveTokens = `SELECT COUNT(*) FROM auth_tokens WHERE expiry > now()`
)
