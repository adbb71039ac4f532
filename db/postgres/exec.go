package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/canaryfilms/portal/db"
)

func (d *Db) Execute(ctx context.Context, query string, args ...any) (db.Result, error) {
	q := rewritePlaceholders(query)

	// Inserts go through a RETURNING clause so the engine-assigned key is
	// surfaced under InsertedID, matching what sqlite reads off the
	// connection. Statements that already carry RETURNING keep theirs.
	if needsReturningID(query) {
		rows, err := d.pool.Query(ctx, q+" RETURNING id", args...)
		if err != nil {
			return db.Result{}, fmt.Errorf("%w: %v", db.ErrDb, err)
		}
		defer rows.Close()

		var res db.Result
		for rows.Next() {
			if err := rows.Scan(&res.InsertedID); err != nil {
				return db.Result{}, fmt.Errorf("%w: scan inserted id: %v", db.ErrDb, err)
			}
			res.AffectedRows++
		}
		if err := rows.Err(); err != nil {
			return db.Result{}, fmt.Errorf("%w: %v", db.ErrDb, err)
		}
		return res, nil
	}

	tag, err := d.pool.Exec(ctx, q, args...)
	if err != nil {
		return db.Result{}, fmt.Errorf("%w: %v", db.ErrDb, err)
	}
	return db.Result{AffectedRows: tag.RowsAffected()}, nil
}

func (d *Db) FetchOne(ctx context.Context, query string, args ...any) (db.Row, error) {
	rows, err := d.pool.Query(ctx, rewritePlaceholders(query), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", db.ErrDb, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", db.ErrDb, err)
		}
		return nil, nil
	}
	row, err := rowFromPgx(rows)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (d *Db) FetchAll(ctx context.Context, query string, args ...any) ([]db.Row, error) {
	rows, err := d.pool.Query(ctx, rewritePlaceholders(query), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", db.ErrDb, err)
	}
	defer rows.Close()

	var out []db.Row
	for rows.Next() {
		row, err := rowFromPgx(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", db.ErrDb, err)
	}
	return out, nil
}

func rowFromPgx(rows pgx.Rows) (db.Row, error) {
	values, err := rows.Values()
	if err != nil {
		return nil, fmt.Errorf("%w: read row values: %v", db.ErrDb, err)
	}
	fields := rows.FieldDescriptions()
	row := make(db.Row, len(fields))
	for i, fd := range fields {
		row[fd.Name] = values[i]
	}
	return row, nil
}
