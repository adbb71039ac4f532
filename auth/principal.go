package auth

import (
	"time"

	"github.com/canaryfilms/portal/db"
)

// Principal is the authenticated, reduced view of a user row. It is
// produced only by successful resolution or session decoding, never
// constructed from untrusted input.
type Principal struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	IsApproved bool      `json:"is_approved"`
	LastLogin  time.Time `json:"last_login"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == db.RoleAdmin
}

func principalFromUser(u *db.User) Principal {
	return Principal{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		IsApproved: u.IsApproved,
		LastLogin:  u.LastLogin,
	}
}
