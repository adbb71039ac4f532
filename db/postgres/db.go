package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/canaryfilms/portal/db"
)

// pingTimeout bounds the startup reachability check. Fast failure beats a
// hanging deploy when the connection string points nowhere.
const pingTimeout = 8 * time.Second

// Db is the PostgreSQL implementation of db.Adapter. Statements arrive with
// `?` placeholders and are rewritten to $1..$N before dispatch.
type Db struct {
	pool *pgxpool.Pool
}

var _ db.Adapter = (*Db)(nil)

// New connects to the database described by the connection string and
// verifies reachability. Errors here are fatal at startup by contract.
func New(ctx context.Context, url string) (*Db, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres unreachable: %w", err)
	}

	return &Db{pool: pool}, nil
}

func (d *Db) Close() error {
	d.pool.Close()
	return nil
}
