package auth

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/canaryfilms/portal/config"
	"github.com/canaryfilms/portal/crypto"
	"github.com/canaryfilms/portal/db"
)

const generatedPasswordLength = 32

// EnsureAdmin guarantees one privileged account exists. When no admin row
// is found it inserts one, approved, with the configured password or a
// freshly generated one. A generated password is written once to out and
// never logged or persisted in plaintext afterwards.
//
// The check-then-insert is not guarded against concurrent cold starts; two
// processes bootstrapping at once could both observe "no admin". Accepted:
// a single instance runs bootstrap in practice.
func EnsureAdmin(ctx context.Context, users db.DbUsers, cfg config.Admin, logger *slog.Logger, out io.Writer) error {
	exists, err := users.HasAdmin(ctx)
	if err != nil {
		return fmt.Errorf("check for admin: %w", err)
	}
	if exists {
		return nil
	}

	password := cfg.Password
	generated := password == ""
	if generated {
		password = crypto.RandomString(generatedPasswordLength, crypto.AlphanumericAlphabet)
	}

	hash, err := crypto.GenerateHash(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	id, err := users.Insert(ctx, db.UserDraft{
		Email:        cfg.Email,
		PasswordHash: hash,
		Name:         "Admin",
		Role:         db.RoleAdmin,
		IsApproved:   true,
	})
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}

	logger.Info("default admin account created", "user_id", id, "email", cfg.Email)
	if generated {
		fmt.Fprintf(out, "\nDEFAULT ADMIN ACCOUNT CREATED\n")
		fmt.Fprintf(out, "  Email:    %s\n", cfg.Email)
		fmt.Fprintf(out, "  Password: %s\n", password)
		fmt.Fprintf(out, "Save this password, it will not be shown again. Change it after first login.\n\n")
	}
	return nil
}
