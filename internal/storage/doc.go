// Package storage persists generated addresses into PostgreSQL for seed-data
// workflows. It wraps pgx/v5 connection pooling with retry, applies the
// embedded goose migration on demand, and inserts address batches with uuid
// primary keys.
package storage
