package core

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/canaryfilms/portal/crypto"
	"github.com/canaryfilms/portal/db"
)

const (
	// oks for dynamic admin responses
	CodeOkUserList = "ok_user_list"
)

const minPasswordLength = 8

// AdminUser is the reduced user view returned to admins. Password hashes
// and provider ids never leave the database layer.
type AdminUser struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	IsApproved bool      `json:"is_approved"`
	Created    time.Time `json:"created_at"`
	LastLogin  time.Time `json:"last_login"`
}

func adminUserFrom(u db.User) AdminUser {
	return AdminUser{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		IsApproved: u.IsApproved,
		Created:    u.Created,
		LastLogin:  u.LastLogin,
	}
}

// AdminListUsersHandler lists every account.
// Endpoint: GET /api/admin/users
// Authenticated: Yes (admin)
func (a *App) AdminListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := a.users.List(r.Context())
	if err != nil {
		a.logger.Error("failed to list users", "err", err)
		writeJsonError(w, errorDatabaseError)
		return
	}
	out := make([]AdminUser, 0, len(users))
	for _, u := range users {
		out = append(out, adminUserFrom(u))
	}
	writeJsonWithData(w, JsonWithData{
		JsonBasic: JsonBasic{
			Status:  http.StatusOK,
			Code:    CodeOkUserList,
			Message: "Users",
		},
		Data: out,
	})
}

type createUserRequest struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	IsApproved bool   `json:"is_approved"`
}

// AdminCreateUserHandler pre-provisions an account. Password is optional:
// an account without one can only sign in through a linked provider.
// Endpoint: POST /api/admin/users
// Authenticated: Yes (admin)
// Allowed Mimetype: application/json
func (a *App) AdminCreateUserHandler(w http.ResponseWriter, r *http.Request) {
	if err, resp := a.ValidateContentType(r, MimeTypeJSON); err != nil {
		writeJsonError(w, resp)
		return
	}

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJsonError(w, errorInvalidRequest)
		return
	}
	if req.Email == "" || req.Name == "" {
		writeJsonError(w, errorMissingFields)
		return
	}
	if err := ValidateEmail(req.Email); err != nil {
		writeJsonError(w, errorInvalidRequest)
		return
	}
	if req.Role == "" {
		req.Role = db.RoleMember
	}
	if req.Role != db.RoleMember && req.Role != db.RoleAdmin {
		writeJsonError(w, errorInvalidRequest)
		return
	}

	existing, err := a.users.ByEmail(r.Context(), req.Email)
	if err != nil {
		a.logger.Error("failed to check email", "err", err)
		writeJsonError(w, errorDatabaseError)
		return
	}
	if existing != nil {
		writeJsonError(w, errorEmailConflict)
		return
	}

	draft := db.UserDraft{
		Email:      req.Email,
		Name:       req.Name,
		Role:       req.Role,
		IsApproved: req.IsApproved,
	}
	if req.Password != "" {
		if len(req.Password) < minPasswordLength {
			writeJsonError(w, errorPasswordComplexity)
			return
		}
		hash, err := crypto.GenerateHash(req.Password)
		if err != nil {
			a.logger.Error("failed to hash password", "err", err)
			writeJsonError(w, errorInternal)
			return
		}
		draft.PasswordHash = hash
	}

	id, err := a.users.Insert(r.Context(), draft)
	if err != nil {
		a.logger.Error("failed to insert user", "err", err)
		writeJsonError(w, errorDatabaseError)
		return
	}

	a.logger.Info("user created", "user_id", id, "role", draft.Role)
	writeJsonWithData(w, JsonWithData{
		JsonBasic: JsonBasic{
			Status:  http.StatusCreated,
			Code:    CodeOkUserCreated,
			Message: "User created",
		},
		Data: AdminUser{
			ID:         id,
			Email:      req.Email,
			Name:       req.Name,
			Role:       draft.Role,
			IsApproved: req.IsApproved,
		},
	})
}

func (a *App) userIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(a.params.Param(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (a *App) setApproval(w http.ResponseWriter, r *http.Request, approved bool) {
	id, ok := a.userIDParam(r)
	if !ok {
		writeJsonError(w, errorInvalidRequest)
		return
	}
	user, err := a.users.ByID(r.Context(), id)
	if err != nil {
		a.logger.Error("failed to load user", "user_id", id, "err", err)
		writeJsonError(w, errorDatabaseError)
		return
	}
	if user == nil {
		writeJsonError(w, errorNotFound)
		return
	}
	if err := a.users.SetApproved(r.Context(), id, approved); err != nil {
		a.logger.Error("failed to update approval", "user_id", id, "err", err)
		writeJsonError(w, errorDatabaseError)
		return
	}
	a.logger.Info("user approval changed", "user_id", id, "approved", approved)
	writeJsonOk(w, okUserUpdated)
}

// AdminApproveUserHandler grants portal access.
// Endpoint: POST /api/admin/users/:id/approve
// Authenticated: Yes (admin)
func (a *App) AdminApproveUserHandler(w http.ResponseWriter, r *http.Request) {
	a.setApproval(w, r, true)
}

// AdminRevokeUserHandler withdraws portal access without deleting the
// account.
// Endpoint: POST /api/admin/users/:id/revoke
// Authenticated: Yes (admin)
func (a *App) AdminRevokeUserHandler(w http.ResponseWriter, r *http.Request) {
	a.setApproval(w, r, false)
}

// AdminDeleteUserHandler removes an account. Admin accounts cannot be
// deleted; the store enforces that in the statement itself.
// Endpoint: DELETE /api/admin/users/:id
// Authenticated: Yes (admin)
func (a *App) AdminDeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := a.userIDParam(r)
	if !ok {
		writeJsonError(w, errorInvalidRequest)
		return
	}
	deleted, err := a.users.Delete(r.Context(), id)
	if err != nil {
		a.logger.Error("failed to delete user", "user_id", id, "err", err)
		writeJsonError(w, errorDatabaseError)
		return
	}
	if !deleted {
		writeJsonError(w, errorNotFound)
		return
	}
	a.logger.Info("user deleted", "user_id", id)
	writeJsonOk(w, okUserDeleted)
}
