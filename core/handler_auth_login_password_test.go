package core

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/canaryfilms/portal/crypto"
	"github.com/canaryfilms/portal/db"
	"github.com/canaryfilms/portal/db/mock"
)

// TestLoginWithPasswordHandler_Validation covers invalid content type,
// malformed JSON, missing fields and bad email formats.
func TestLoginWithPasswordHandler_Validation(t *testing.T) {
	testCases := []struct {
		name        string
		contentType string
		requestBody string
		wantError   jsonResponse
	}{
		{
			name:        "invalid content type",
			contentType: "text/plain",
			requestBody: `{"email":"test@example.com", "password":"password123"}`,
			wantError:   errorInvalidContentType,
		},
		{
			name:        "malformed json",
			contentType: "application/json",
			requestBody: `{"email":"test@example.com",`,
			wantError:   errorInvalidRequest,
		},
		{
			name:        "missing email field",
			contentType: "application/json",
			requestBody: `{"password":"password123"}`,
			wantError:   errorMissingFields,
		},
		{
			name:        "missing password field",
			contentType: "application/json",
			requestBody: `{"email":"test@example.com"}`,
			wantError:   errorMissingFields,
		},
		{
			name:        "invalid email format",
			contentType: "application/json",
			requestBody: `{"email":"not-an-email", "password":"password123"}`,
			wantError:   errorInvalidRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", tc.contentType)
			rr := httptest.NewRecorder()

			app := testApp(&mock.Users{}, &mock.Portal{})
			app.LoginWithPasswordHandler(rr, req)

			if rr.Code != tc.wantError.status {
				t.Errorf("expected status %d, got %d", tc.wantError.status, rr.Code)
			}

			var gotBody, wantBody map[string]interface{}
			if err := json.NewDecoder(rr.Body).Decode(&gotBody); err != nil {
				t.Fatalf("failed to decode response body: %v", err)
			}
			if err := json.Unmarshal(tc.wantError.body, &wantBody); err != nil {
				t.Fatalf("failed to decode wantError body: %v", err)
			}
			if gotBody["code"] != wantBody["code"] {
				t.Errorf("expected error code %q, got %q", wantBody["code"], gotBody["code"])
			}
		})
	}
}

// TestLoginWithPasswordHandler_Authentication covers the outcomes of the
// credential check itself.
func TestLoginWithPasswordHandler_Authentication(t *testing.T) {
	hash, _ := crypto.GenerateHash("password123")
	approved := &db.User{
		ID:           3,
		Email:        "test@example.com",
		PasswordHash: hash,
		Name:         "Test User",
		Role:         db.RoleMember,
		IsApproved:   true,
	}
	unapproved := &db.User{
		ID:           4,
		Email:        "pending@example.com",
		PasswordHash: hash,
		Role:         db.RoleMember,
	}
	providerOnly := &db.User{
		ID:         5,
		Email:      "linked@example.com",
		Role:       db.RoleMember,
		IsApproved: true,
	}

	byEmail := func(ctx context.Context, email string) (*db.User, error) {
		switch email {
		case approved.Email:
			return approved, nil
		case unapproved.Email:
			return unapproved, nil
		case providerOnly.Email:
			return providerOnly, nil
		}
		return nil, nil
	}

	testCases := []struct {
		name        string
		requestBody string
		wantStatus  int
		wantCode    string
		wantCookie  bool
	}{
		{
			name:        "successful login",
			requestBody: `{"email":"test@example.com", "password":"password123"}`,
			wantStatus:  http.StatusOK,
			wantCode:    CodeOkAuthentication,
			wantCookie:  true,
		},
		{
			name:        "user not found",
			requestBody: `{"email":"notfound@example.com", "password":"password123"}`,
			wantStatus:  http.StatusUnauthorized,
			wantCode:    CodeErrorInvalidCredentials,
		},
		{
			name:        "incorrect password",
			requestBody: `{"email":"test@example.com", "password":"wrongpassword"}`,
			wantStatus:  http.StatusUnauthorized,
			wantCode:    CodeErrorInvalidCredentials,
		},
		{
			name:        "unapproved account",
			requestBody: `{"email":"pending@example.com", "password":"password123"}`,
			wantStatus:  http.StatusForbidden,
			wantCode:    CodeErrorAccountNotApproved,
		},
		{
			name:        "provider-only account",
			requestBody: `{"email":"linked@example.com", "password":"password123"}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeErrorPasswordLoginUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			app := testApp(&mock.Users{ByEmailFunc: byEmail}, &mock.Portal{})
			app.LoginWithPasswordHandler(rr, req)

			if rr.Code != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, rr.Code)
			}

			var body map[string]interface{}
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response body: %v", err)
			}
			if code, _ := body["code"].(string); code != tc.wantCode {
				t.Errorf("expected code %q, got %q", tc.wantCode, code)
			}

			var sessionCookie *http.Cookie
			for _, c := range rr.Result().Cookies() {
				if c.Name == SessionCookieName {
					sessionCookie = c
				}
			}
			if tc.wantCookie && sessionCookie == nil {
				t.Error("successful login must set the session cookie")
			}
			if !tc.wantCookie && sessionCookie != nil {
				t.Error("failed login must not set the session cookie")
			}

			if tc.wantCookie {
				data, ok := body["data"].(map[string]interface{})
				if !ok {
					t.Fatal("expected 'data' field in successful response")
				}
				record, ok := data["record"].(map[string]interface{})
				if !ok {
					t.Fatal("expected 'record' field in successful response")
				}
				if record["email"] != approved.Email {
					t.Errorf("record email = %v, want %s", record["email"], approved.Email)
				}
				if _, leaked := record["password_hash"]; leaked {
					t.Error("response leaked the password hash")
				}
			}
		})
	}
}
