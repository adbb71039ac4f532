package auth

import (
	"context"
	"testing"

	"github.com/canaryfilms/portal/db"
	"github.com/canaryfilms/portal/db/mock"
)

func TestSessionCodecRoundTrip(t *testing.T) {
	user := &db.User{
		ID:         42,
		Email:      "actor@example.com",
		Name:       "Some Actor",
		Role:       db.RoleMember,
		IsApproved: true,
	}
	users := &mock.Users{
		ByIDFunc: func(ctx context.Context, id int64) (*db.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, nil
		},
	}
	codec := NewSessionCodec(users)

	encoded := codec.Encode(principalFromUser(user))
	if encoded != "42" {
		t.Errorf("Encode() = %q, want %q", encoded, "42")
	}

	principal, err := codec.Decode(context.Background(), encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if principal.ID != user.ID || principal.Email != user.Email || principal.Role != user.Role {
		t.Errorf("decoded principal mismatch: %+v", principal)
	}
}

func TestSessionCodecVanishedPrincipal(t *testing.T) {
	codec := NewSessionCodec(&mock.Users{})

	testCases := []struct {
		name string
		id   string
	}{
		{name: "deleted user", id: "42"},
		{name: "garbage id", id: "not-a-number"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			principal, err := codec.Decode(context.Background(), tc.id)
			wantKind(t, err, FailurePrincipalVanished)
			if principal != nil {
				t.Error("vanished session must not yield a principal")
			}
		})
	}
}

func TestSessionCodecDbError(t *testing.T) {
	users := &mock.Users{
		ByIDFunc: func(ctx context.Context, id int64) (*db.User, error) {
			return nil, db.ErrDb
		},
	}
	codec := NewSessionCodec(users)

	_, err := codec.Decode(context.Background(), "42")
	wantKind(t, err, FailureDb)
}
