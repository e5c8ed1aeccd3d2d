package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/addrforge/addrforge/pkg/addressgen"
)

const insertAddress = `
INSERT INTO addresses (id, street1, street2, city, county, state, zip, country)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// Store writes generated addresses into the addresses table.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps an open connection pool. The caller owns the pool lifecycle.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// InsertAddresses inserts the batch in one round trip per batch using the pgx
// pipeline, assigning a fresh uuid to every row. It returns the number of
// rows written.
func (s *Store) InsertAddresses(ctx context.Context, addrs []addressgen.Address) (int, error) {
	if len(addrs) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, a := range addrs {
		batch.Queue(insertAddress,
			uuid.NewString(), a.Street1, a.Street2, a.City, a.County, a.State, a.Zip, a.Country)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := range addrs {
		if _, err := results.Exec(); err != nil {
			return i, errors.Join(ErrFailedToInsertAddresses, err)
		}
	}
	return len(addrs), nil
}
