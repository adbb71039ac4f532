package db

import (
	"context"
	"fmt"
)

// DbUsers is the schema-level user access consumed by the auth packages.
// No business policy lives behind it; it is pure data access, kept apart
// from the Adapter so dialect translation and schema shape don't mix.
type DbUsers interface {
	ByID(ctx context.Context, id int64) (*User, error)
	ByEmail(ctx context.Context, email string) (*User, error)
	ByProvider(ctx context.Context, p Provider, externalID string) (*User, error)
	TouchLastLogin(ctx context.Context, id int64) error
	LinkProvider(ctx context.Context, id int64, p Provider, externalID string) error
	Insert(ctx context.Context, draft UserDraft) (int64, error)
	HasAdmin(ctx context.Context) (bool, error)
	List(ctx context.Context) ([]User, error)
	SetApproved(ctx context.Context, id int64, approved bool) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserStore implements DbUsers on top of an Adapter. It owns every user
// statement in the portal.
type UserStore struct {
	db Adapter
}

var _ DbUsers = (*UserStore)(nil)

func NewUserStore(a Adapter) *UserStore {
	return &UserStore{db: a}
}

const userColumns = "id, email, password_hash, name, role, is_approved, hackclub_id, google_id, created_at, last_login"

func userFromRow(row Row) *User {
	return &User{
		ID:           row.Int64("id"),
		Email:        row.String("email"),
		PasswordHash: row.String("password_hash"),
		Name:         row.String("name"),
		Role:         row.String("role"),
		IsApproved:   row.Bool("is_approved"),
		HackclubID:   row.String("hackclub_id"),
		GoogleID:     row.String("google_id"),
		Created:      row.Time("created_at"),
		LastLogin:    row.Time("last_login"),
	}
}

// ByID retrieves a user by primary key. Returns nil, nil when no row
// matched; errors are reserved for engine failures.
func (s *UserStore) ByID(ctx context.Context, id int64) (*User, error) {
	row, err := s.db.FetchOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	if err != nil || row == nil {
		return nil, err
	}
	return userFromRow(row), nil
}

func (s *UserStore) ByEmail(ctx context.Context, email string) (*User, error) {
	row, err := s.db.FetchOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
	if err != nil || row == nil {
		return nil, err
	}
	return userFromRow(row), nil
}

func (s *UserStore) ByProvider(ctx context.Context, p Provider, externalID string) (*User, error) {
	col, err := p.externalIDColumn()
	if err != nil {
		return nil, err
	}
	row, err := s.db.FetchOne(ctx, "SELECT "+userColumns+" FROM users WHERE "+col+" = ?", externalID)
	if err != nil || row == nil {
		return nil, err
	}
	return userFromRow(row), nil
}

func (s *UserStore) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := s.db.Execute(ctx, "UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}

// LinkProvider persists a provider's external id on a user row. Re-running
// with the same id is a no-op at the schema level, which keeps interrupted
// logins safe to retry.
func (s *UserStore) LinkProvider(ctx context.Context, id int64, p Provider, externalID string) error {
	col, err := p.externalIDColumn()
	if err != nil {
		return err
	}
	_, err = s.db.Execute(ctx, "UPDATE users SET "+col+" = ? WHERE id = ?", externalID, id)
	if err != nil {
		return fmt.Errorf("link %s id: %w", p, err)
	}
	return nil
}

func (s *UserStore) Insert(ctx context.Context, draft UserDraft) (int64, error) {
	role := draft.Role
	if role == "" {
		role = RoleMember
	}
	var hash any
	if draft.PasswordHash != "" {
		hash = draft.PasswordHash
	}
	res, err := s.db.Execute(ctx,
		"INSERT INTO users (email, password_hash, name, role, is_approved) VALUES (?, ?, ?, ?, ?)",
		draft.Email, hash, draft.Name, role, boolToInt(draft.IsApproved))
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.InsertedID, nil
}

func (s *UserStore) HasAdmin(ctx context.Context) (bool, error) {
	row, err := s.db.FetchOne(ctx, "SELECT id FROM users WHERE role = ? LIMIT 1", RoleAdmin)
	if err != nil {
		return false, err
	}
	return row != nil, nil
}

func (s *UserStore) List(ctx context.Context) ([]User, error) {
	rows, err := s.db.FetchAll(ctx, "SELECT "+userColumns+" FROM users ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(rows))
	for _, row := range rows {
		users = append(users, *userFromRow(row))
	}
	return users, nil
}

func (s *UserStore) SetApproved(ctx context.Context, id int64, approved bool) error {
	_, err := s.db.Execute(ctx, "UPDATE users SET is_approved = ? WHERE id = ?", boolToInt(approved), id)
	return err
}

// Delete removes a user row. Admin rows are never deleted; the statement
// itself carries the guard so there is no read-check-write window.
func (s *UserStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.Execute(ctx, "DELETE FROM users WHERE id = ? AND role != ?", id, RoleAdmin)
	if err != nil {
		return false, err
	}
	return res.AffectedRows > 0, nil
}

// is_approved is an INTEGER column on both engines; bind 0/1 rather than
// relying on driver bool mapping.
func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
