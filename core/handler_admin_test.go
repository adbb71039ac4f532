package core

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/canaryfilms/portal/db"
	"github.com/canaryfilms/portal/db/mock"
)

func TestAdminCreateUserHandler(t *testing.T) {
	existing := &db.User{ID: 1, Email: "taken@example.com"}

	testCases := []struct {
		name        string
		requestBody string
		wantStatus  int
		wantCode    string
		wantInserts int
	}{
		{
			name:        "create member without password",
			requestBody: `{"email":"new@example.com", "name":"New Member"}`,
			wantStatus:  http.StatusCreated,
			wantCode:    CodeOkUserCreated,
			wantInserts: 1,
		},
		{
			name:        "create approved admin with password",
			requestBody: `{"email":"boss@example.com", "name":"Boss", "password":"longenough", "role":"admin", "is_approved":true}`,
			wantStatus:  http.StatusCreated,
			wantCode:    CodeOkUserCreated,
			wantInserts: 1,
		},
		{
			name:        "email conflict",
			requestBody: `{"email":"taken@example.com", "name":"Dup"}`,
			wantStatus:  http.StatusConflict,
			wantCode:    CodeErrorEmailConflict,
		},
		{
			name:        "missing name",
			requestBody: `{"email":"new@example.com"}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeErrorMissingFields,
		},
		{
			name:        "unknown role",
			requestBody: `{"email":"new@example.com", "name":"X", "role":"superuser"}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeErrorInvalidRequest,
		},
		{
			name:        "short password",
			requestBody: `{"email":"new@example.com", "name":"X", "password":"short"}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeErrorPasswordComplexity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			users := &mock.Users{
				ByEmailFunc: func(ctx context.Context, email string) (*db.User, error) {
					if email == existing.Email {
						return existing, nil
					}
					return nil, nil
				},
				InsertFunc: func(ctx context.Context, draft db.UserDraft) (int64, error) {
					return 10, nil
				},
			}
			app := testApp(users, &mock.Portal{})

			req := httptest.NewRequest("POST", "/api/admin/users", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			app.AdminCreateUserHandler(rr, req)

			if rr.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			var body map[string]interface{}
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response body: %v", err)
			}
			if code, _ := body["code"].(string); code != tc.wantCode {
				t.Errorf("code = %q, want %q", code, tc.wantCode)
			}
			if users.InsertCalls != tc.wantInserts {
				t.Errorf("insert calls = %d, want %d", users.InsertCalls, tc.wantInserts)
			}
		})
	}
}

func TestAdminApprovalHandlers(t *testing.T) {
	member := &db.User{ID: 5, Email: "pending@example.com", Role: db.RoleMember}

	testCases := []struct {
		name         string
		param        string
		handler      string
		wantStatus   int
		wantApproved *bool
	}{
		{
			name:       "approve",
			param:      "5",
			handler:    "approve",
			wantStatus: http.StatusOK,
			wantApproved: func() *bool {
				v := true
				return &v
			}(),
		},
		{
			name:       "revoke",
			param:      "5",
			handler:    "revoke",
			wantStatus: http.StatusOK,
			wantApproved: func() *bool {
				v := false
				return &v
			}(),
		},
		{
			name:       "unknown user",
			param:      "999",
			handler:    "approve",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "bad id",
			param:      "abc",
			handler:    "approve",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotApproved *bool
			users := &mock.Users{
				ByIDFunc: func(ctx context.Context, id int64) (*db.User, error) {
					if id == member.ID {
						return member, nil
					}
					return nil, nil
				},
				SetApprovedFunc: func(ctx context.Context, id int64, approved bool) error {
					gotApproved = &approved
					return nil
				},
			}
			app := testApp(users, &mock.Portal{})
			app.params = stubParams{"id": tc.param}

			req := httptest.NewRequest("POST", "/api/admin/users/"+tc.param+"/"+tc.handler, nil)
			rr := httptest.NewRecorder()

			if tc.handler == "approve" {
				app.AdminApproveUserHandler(rr, req)
			} else {
				app.AdminRevokeUserHandler(rr, req)
			}

			if rr.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantApproved == nil {
				if gotApproved != nil {
					t.Errorf("SetApproved called with %v, want no call", *gotApproved)
				}
			} else if gotApproved == nil || *gotApproved != *tc.wantApproved {
				t.Errorf("SetApproved = %v, want %v", gotApproved, *tc.wantApproved)
			}
		})
	}
}

func TestAdminDeleteUserHandler(t *testing.T) {
	testCases := []struct {
		name       string
		param      string
		deleted    bool
		wantStatus int
	}{
		{
			name:       "deleted member",
			param:      "5",
			deleted:    true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "admin or unknown row survives",
			param:      "1",
			deleted:    false,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "bad id",
			param:      "zero",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			users := &mock.Users{
				DeleteFunc: func(ctx context.Context, id int64) (bool, error) {
					return tc.deleted, nil
				},
			}
			app := testApp(users, &mock.Portal{})
			app.params = stubParams{"id": tc.param}

			req := httptest.NewRequest("DELETE", "/api/admin/users/"+tc.param, nil)
			rr := httptest.NewRecorder()
			app.AdminDeleteUserHandler(rr, req)

			if rr.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}

func TestAdminListUsersHidesSecrets(t *testing.T) {
	users := &mock.Users{
		ListFunc: func(ctx context.Context) ([]db.User, error) {
			return []db.User{{
				ID:           1,
				Email:        "admin@example.com",
				PasswordHash: "$2a$10$secret",
				Name:         "Admin",
				Role:         db.RoleAdmin,
				IsApproved:   true,
				HackclubID:   "42",
			}}, nil
		},
	}
	app := testApp(users, &mock.Portal{})

	req := httptest.NewRequest("GET", "/api/admin/users", nil)
	rr := httptest.NewRecorder()
	app.AdminListUsersHandler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if strings.Contains(body, "secret") || strings.Contains(body, "password") {
		t.Errorf("user list leaked credential material: %s", body)
	}
	if strings.Contains(body, "hackclub") {
		t.Errorf("user list leaked provider ids: %s", body)
	}
}
