package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/canaryfilms/portal/db"
)

// Db is the SQLite implementation of db.Adapter, backed by a zombiezen
// connection pool. SQLite binds `?` placeholders natively, so no statement
// rewriting happens here.
type Db struct {
	pool *sqlitex.Pool
}

var _ db.Adapter = (*Db)(nil)

// New opens (creating if needed) the database file and its pool. An
// unreachable or unopenable file is surfaced to the caller, which treats it
// as fatal at startup.
func New(path string) (*Db, error) {
	pool, err := sqlitex.NewPool(fmt.Sprintf("file:%s", path), sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sqlite pool at %s: %w", path, err)
	}
	return &Db{pool: pool}, nil
}

// NewWithPool wraps an existing pool whose lifecycle is managed externally.
// Used by tests with in-memory databases.
func NewWithPool(pool *sqlitex.Pool) (*Db, error) {
	if pool == nil {
		return nil, fmt.Errorf("provided pool cannot be nil")
	}
	return &Db{pool: pool}, nil
}

func (d *Db) Close() error {
	return d.pool.Close()
}
