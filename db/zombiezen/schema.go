package zombiezen

import (
	"context"
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/canaryfilms/portal/db"
)

// schema is the sqlite rendition of the portal tables. Table names, columns
// and foreign keys must stay identical to the postgres rendition; only the
// key and time column syntax may differ.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	email TEXT UNIQUE NOT NULL,
	password_hash TEXT,
	name TEXT NOT NULL,
	role TEXT DEFAULT 'member',
	is_approved INTEGER DEFAULT 0,
	hackclub_id TEXT UNIQUE,
	google_id TEXT UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	last_login DATETIME
);
CREATE TABLE IF NOT EXISTS shoot_schedules (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date DATE NOT NULL,
	time TEXT NOT NULL,
	location TEXT,
	notes TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS schedule_actors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	schedule_id INTEGER NOT NULL,
	user_id INTEGER NOT NULL,
	character_name TEXT,
	FOREIGN KEY (schedule_id) REFERENCES shoot_schedules(id),
	FOREIGN KEY (user_id) REFERENCES users(id)
);
CREATE TABLE IF NOT EXISTS scripts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	version INTEGER DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS lines_to_learn (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	schedule_id INTEGER NOT NULL,
	user_id INTEGER NOT NULL,
	scene_number TEXT,
	lines TEXT NOT NULL,
	notes TEXT,
	FOREIGN KEY (schedule_id) REFERENCES shoot_schedules(id),
	FOREIGN KEY (user_id) REFERENCES users(id)
);
CREATE TABLE IF NOT EXISTS documents (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT,
	file_path TEXT NOT NULL,
	category TEXT DEFAULT 'general',
	uploaded_by INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (uploaded_by) REFERENCES users(id)
);
`

func (d *Db) BootstrapSchema(ctx context.Context) error {
	conn, err := d.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("%w: take connection: %v", db.ErrDb, err)
	}
	defer d.pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return fmt.Errorf("%w: bootstrap schema: %v", db.ErrDb, err)
	}
	return nil
}
