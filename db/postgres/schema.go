package postgres

import (
	"context"
	"fmt"

	"github.com/canaryfilms/portal/db"
)

// schemaStatements is the postgres rendition of the portal tables. It must
// match the sqlite rendition in names, columns and foreign keys; adding a
// third engine means reproducing exactly this shape in its own dialect.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT,
		name TEXT NOT NULL,
		role TEXT DEFAULT 'member',
		is_approved INTEGER DEFAULT 0,
		hackclub_id TEXT UNIQUE,
		google_id TEXT UNIQUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		last_login TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS shoot_schedules (
		id SERIAL PRIMARY KEY,
		date DATE NOT NULL,
		time TEXT NOT NULL,
		location TEXT,
		notes TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS schedule_actors (
		id SERIAL PRIMARY KEY,
		schedule_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		character_name TEXT,
		FOREIGN KEY (schedule_id) REFERENCES shoot_schedules(id),
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS scripts (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		version INTEGER DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS lines_to_learn (
		id SERIAL PRIMARY KEY,
		schedule_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		scene_number TEXT,
		lines TEXT NOT NULL,
		notes TEXT,
		FOREIGN KEY (schedule_id) REFERENCES shoot_schedules(id),
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS documents (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		file_path TEXT NOT NULL,
		category TEXT DEFAULT 'general',
		uploaded_by INTEGER,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (uploaded_by) REFERENCES users(id)
	)`,
}

func (d *Db) BootstrapSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := d.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%w: bootstrap schema: %v", db.ErrDb, err)
		}
	}
	return nil
}
