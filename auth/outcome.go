package auth

import "fmt"

// FailureKind is the stable vocabulary of authentication failures. The
// transport layer maps kinds to user-facing messages; the pipeline decides
// which kinds may surface verbatim and which carry only a generic message.
type FailureKind int

const (
	// FailureAccountNotFound: no account matches the presented identity.
	FailureAccountNotFound FailureKind = iota
	// FailureNotApproved: the account exists but an admin has not approved
	// it; blocks authentication regardless of credential validity.
	FailureNotApproved
	// FailureNoPasswordSet: local login on a provider-only account.
	FailureNoPasswordSet
	// FailureInvalidCredential: the password did not match.
	FailureInvalidCredential
	// FailureAccountNotPreProvisioned: provider login with no pre-created
	// account. The portal never self-registers unknown users.
	FailureAccountNotPreProvisioned
	// FailureUpstreamOAuth: token exchange or profile fetch failed. Not
	// retried; the caller decides whether to prompt re-authentication.
	FailureUpstreamOAuth
	// FailurePrincipalVanished: a session id no longer resolves to a row.
	FailurePrincipalVanished
	// FailureDb: persistence layer failure. Logged with detail server-side,
	// surfaced only generically.
	FailureDb
	// FailureInternal: catch-all for unexpected errors. Same logging policy
	// as FailureDb.
	FailureInternal
)

func (k FailureKind) String() string {
	switch k {
	case FailureAccountNotFound:
		return "account_not_found"
	case FailureNotApproved:
		return "not_approved"
	case FailureNoPasswordSet:
		return "no_password_set"
	case FailureInvalidCredential:
		return "invalid_credential"
	case FailureAccountNotPreProvisioned:
		return "account_not_pre_provisioned"
	case FailureUpstreamOAuth:
		return "upstream_oauth_failure"
	case FailurePrincipalVanished:
		return "principal_vanished"
	case FailureDb:
		return "db_error"
	case FailureInternal:
		return "internal_error"
	}
	return fmt.Sprintf("failure(%d)", int(k))
}

// Failure is a typed authentication failure. It satisfies error so
// resolution reads as the usual (principal, error) pair, and callers
// recover the kind with errors.As.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

func failure(kind FailureKind, message string) *Failure {
	return &Failure{Kind: kind, Message: message}
}
