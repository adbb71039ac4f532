package zombiezen

import (
	"context"
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/canaryfilms/portal/db"
)

func (d *Db) Execute(ctx context.Context, query string, args ...any) (db.Result, error) {
	conn, err := d.pool.Take(ctx)
	if err != nil {
		return db.Result{}, fmt.Errorf("%w: take connection: %v", db.ErrDb, err)
	}
	defer d.pool.Put(conn)

	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{Args: args})
	if err != nil {
		return db.Result{}, fmt.Errorf("%w: %v", db.ErrDb, err)
	}
	// Both counters come from the connection the statement ran on, which
	// the pool guarantees is still ours until Put.
	return db.Result{
		InsertedID:   conn.LastInsertRowID(),
		AffectedRows: int64(conn.Changes()),
	}, nil
}

func (d *Db) FetchOne(ctx context.Context, query string, args ...any) (db.Row, error) {
	conn, err := d.pool.Take(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: take connection: %v", db.ErrDb, err)
	}
	defer d.pool.Put(conn)

	var row db.Row // stays nil when no rows matched
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			if row == nil {
				row = rowFromStmt(stmt)
			}
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", db.ErrDb, err)
	}
	return row, nil
}

func (d *Db) FetchAll(ctx context.Context, query string, args ...any) ([]db.Row, error) {
	conn, err := d.pool.Take(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: take connection: %v", db.ErrDb, err)
	}
	defer d.pool.Put(conn)

	var rows []db.Row
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rows = append(rows, rowFromStmt(stmt))
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", db.ErrDb, err)
	}
	return rows, nil
}

func rowFromStmt(stmt *sqlite.Stmt) db.Row {
	row := make(db.Row, stmt.ColumnCount())
	for i := 0; i < stmt.ColumnCount(); i++ {
		name := stmt.ColumnName(i)
		switch stmt.ColumnType(i) {
		case sqlite.TypeInteger:
			row[name] = stmt.ColumnInt64(i)
		case sqlite.TypeFloat:
			row[name] = stmt.ColumnFloat(i)
		case sqlite.TypeText:
			row[name] = stmt.ColumnText(i)
		case sqlite.TypeBlob:
			buf := make([]byte, stmt.ColumnLen(i))
			stmt.ColumnBytes(i, buf)
			row[name] = buf
		default:
			row[name] = nil
		}
	}
	return row
}
