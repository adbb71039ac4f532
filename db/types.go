package db

import (
	"fmt"
	"time"
)

// Roles stored in users.role. The portal knows exactly these two.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Provider identifies a login method. It is a closed set so that dispatch
// over providers is checked at build time instead of going through string
// lookup tables.
type Provider int

const (
	ProviderLocal Provider = iota
	ProviderHackclub
	ProviderGoogle
)

func (p Provider) String() string {
	switch p {
	case ProviderLocal:
		return "local"
	case ProviderHackclub:
		return "hackclub"
	case ProviderGoogle:
		return "google"
	}
	return fmt.Sprintf("provider(%d)", int(p))
}

// externalIDColumn returns the users column holding the provider's external
// id. Local logins have none.
func (p Provider) externalIDColumn() (string, error) {
	switch p {
	case ProviderHackclub:
		return "hackclub_id", nil
	case ProviderGoogle:
		return "google_id", nil
	}
	return "", fmt.Errorf("provider %s has no external id column", p)
}

// User is a row of the users table.
//
// PasswordHash is empty for provider-only accounts. HackclubID and GoogleID
// are empty until the first successful login via that provider links them.
// LastLogin is the zero time for accounts that never authenticated.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Role         string
	IsApproved   bool
	HackclubID   string
	GoogleID     string
	Created      time.Time
	LastLogin    time.Time
}

// UserDraft is the insertable subset of User. Role defaults to member.
type UserDraft struct {
	Email        string
	PasswordHash string
	Name         string
	Role         string
	IsApproved   bool
}
