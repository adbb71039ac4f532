package auth

import (
	"context"
	"strconv"

	"github.com/canaryfilms/portal/db"
)

// SessionCodec reduces a Principal to its durable token (the user id) and
// reconstitutes it on the next request. The ambient "current session" is
// not global state; callers thread the decoded Principal explicitly.
type SessionCodec struct {
	users db.DbUsers
}

func NewSessionCodec(users db.DbUsers) *SessionCodec {
	return &SessionCodec{users: users}
}

func (c *SessionCodec) Encode(p Principal) string {
	return strconv.FormatInt(p.ID, 10)
}

// Decode resolves a stored id back to a Principal. The id referring to a
// since-deleted user is an expected condition, not a fault: it yields
// FailurePrincipalVanished.
func (c *SessionCodec) Decode(ctx context.Context, id string) (*Principal, error) {
	uid, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, failure(FailurePrincipalVanished, "session does not resolve to a user")
	}
	user, err := c.users.ByID(ctx, uid)
	if err != nil {
		return nil, failure(FailureDb, "session lookup failed")
	}
	if user == nil {
		return nil, failure(FailurePrincipalVanished, "session does not resolve to a user")
	}
	principal := principalFromUser(user)
	return &principal, nil
}
