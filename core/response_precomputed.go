package core

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canaryfilms/portal/auth"
)

// Standard response codes
const (
	// oks
	CodeOkLoggedOut   = "ok_logged_out"
	CodeOkUserCreated = "ok_user_created"
	CodeOkUserUpdated = "ok_user_updated"
	CodeOkUserDeleted = "ok_user_deleted"

	// errors
	CodeErrorInvalidRequest            = "err_invalid_input"
	CodeErrorMissingFields             = "err_missing_fields"
	CodeErrorInvalidCredentials        = "err_invalid_credentials"
	CodeErrorAccountNotApproved        = "err_account_not_approved"
	CodeErrorAccountNotProvisioned     = "err_account_not_provisioned"
	CodeErrorPasswordLoginUnavailable  = "err_password_login_unavailable"
	CodeErrorPasswordComplexity        = "err_password_complexity"
	CodeErrorEmailConflict             = "err_email_conflict"
	CodeErrorNotFound                  = "err_not_found"
	CodeErrorForbidden                 = "err_forbidden"
	CodeErrorNoSession                 = "err_no_session"
	CodeErrorSessionInvalid            = "err_session_invalid"
	CodeErrorTokenGeneration           = "err_token_generation"
	CodeErrorInvalidOAuth2Provider     = "err_invalid_oauth2_provider"
	CodeErrorOAuth2StateMismatch       = "err_oauth2_state_mismatch"
	CodeErrorOAuth2TokenExchangeFailed = "err_oauth2_token_exchange_failed"
	CodeErrorOAuth2UserInfoFailed      = "err_oauth2_user_info_failed"
	CodeErrorAuthDatabaseError         = "err_auth_database_error"
	CodeErrorDatabaseError             = "err_database_error"
	CodeErrorInternal                  = "err_internal"
	CodeErrorInvalidContentType        = "err_invalid_content_type"
)

// precomputeBasicResponse is executed during initialization (before main()
// runs); the JSON body is marshaled once and stored as []byte. Any time a
// handler calls writeJsonError(w, response) it simply writes the
// pre-computed bytes to the response writer.
func precomputeBasicResponse(status int, code, message string) jsonResponse {
	basic := JsonBasic{
		Status:  status,
		Code:    code,
		Message: message,
	}
	body, _ := json.Marshal(basic)
	return jsonResponse{status: status, body: body}
}

// Precomputed error and ok responses with status codes
var (
	//errors
	errorInvalidRequest            = precomputeBasicResponse(http.StatusBadRequest, CodeErrorInvalidRequest, "The request contains invalid data")
	errorMissingFields             = precomputeBasicResponse(http.StatusBadRequest, CodeErrorMissingFields, "Required fields are missing")
	errorInvalidCredentials        = precomputeBasicResponse(http.StatusUnauthorized, CodeErrorInvalidCredentials, "Invalid credentials provided")
	errorAccountNotApproved        = precomputeBasicResponse(http.StatusForbidden, CodeErrorAccountNotApproved, "Account is awaiting admin approval")
	errorAccountNotProvisioned     = precomputeBasicResponse(http.StatusForbidden, CodeErrorAccountNotProvisioned, "No account has been provisioned for this identity")
	errorPasswordLoginUnavailable  = precomputeBasicResponse(http.StatusBadRequest, CodeErrorPasswordLoginUnavailable, "This account uses a linked sign-in; password login is not available")
	errorPasswordComplexity        = precomputeBasicResponse(http.StatusBadRequest, CodeErrorPasswordComplexity, "Password must be at least 8 characters")
	errorEmailConflict             = precomputeBasicResponse(http.StatusConflict, CodeErrorEmailConflict, "Email address is already registered")
	errorNotFound                  = precomputeBasicResponse(http.StatusNotFound, CodeErrorNotFound, "Requested resource not found")
	errorForbidden                 = precomputeBasicResponse(http.StatusForbidden, CodeErrorForbidden, "Not allowed")
	errorNoSession                 = precomputeBasicResponse(http.StatusUnauthorized, CodeErrorNoSession, "Authentication required")
	errorSessionInvalid            = precomputeBasicResponse(http.StatusUnauthorized, CodeErrorSessionInvalid, "Session is no longer valid")
	errorTokenGeneration           = precomputeBasicResponse(http.StatusInternalServerError, CodeErrorTokenGeneration, "Failed to generate session token")
	errorInvalidOAuth2Provider     = precomputeBasicResponse(http.StatusBadRequest, CodeErrorInvalidOAuth2Provider, "Invalid OAuth2 provider specified")
	errorOAuth2StateMismatch       = precomputeBasicResponse(http.StatusBadRequest, CodeErrorOAuth2StateMismatch, "OAuth2 state is unknown or expired")
	errorOAuth2TokenExchangeFailed = precomputeBasicResponse(http.StatusBadGateway, CodeErrorOAuth2TokenExchangeFailed, "Failed to exchange OAuth2 token")
	errorOAuth2UserInfoFailed      = precomputeBasicResponse(http.StatusBadGateway, CodeErrorOAuth2UserInfoFailed, "Failed to get user info from OAuth2 provider")
	errorAuthDatabaseError         = precomputeBasicResponse(http.StatusInternalServerError, CodeErrorAuthDatabaseError, "Database error during authentication")
	errorDatabaseError             = precomputeBasicResponse(http.StatusInternalServerError, CodeErrorDatabaseError, "Database error")
	errorInternal                  = precomputeBasicResponse(http.StatusInternalServerError, CodeErrorInternal, "Internal server error")
	errorInvalidContentType        = precomputeBasicResponse(http.StatusUnsupportedMediaType, CodeErrorInvalidContentType, "Unsupported media type")

	// oks
	okLoggedOut   = precomputeBasicResponse(http.StatusOK, CodeOkLoggedOut, "Logged out")
	okUserUpdated = precomputeBasicResponse(http.StatusOK, CodeOkUserUpdated, "User updated")
	okUserDeleted = precomputeBasicResponse(http.StatusOK, CodeOkUserDeleted, "User deleted")
)

// responseForAuthError maps a typed authentication failure to its
// precomputed response. Unknown-account and wrong-password outcomes share
// one response so the endpoint does not reveal which of the two happened.
func responseForAuthError(err error) jsonResponse {
	var f *auth.Failure
	if !errors.As(err, &f) {
		return errorInternal
	}
	switch f.Kind {
	case auth.FailureAccountNotFound, auth.FailureInvalidCredential:
		return errorInvalidCredentials
	case auth.FailureNotApproved:
		return errorAccountNotApproved
	case auth.FailureNoPasswordSet:
		return errorPasswordLoginUnavailable
	case auth.FailureAccountNotPreProvisioned:
		return errorAccountNotProvisioned
	case auth.FailureUpstreamOAuth:
		return errorOAuth2UserInfoFailed
	case auth.FailurePrincipalVanished:
		return errorSessionInvalid
	case auth.FailureDb:
		return errorAuthDatabaseError
	default:
		return errorInternal
	}
}

// For successful precomputed responses
func writeJsonOk(w http.ResponseWriter, resp jsonResponse) {
	setHeaders(w, HeadersJson)
	w.WriteHeader(resp.status)
	w.Write(resp.body)
}

// writeJsonError writes a precomputed JSON error response
func writeJsonError(w http.ResponseWriter, resp jsonResponse) {
	setHeaders(w, HeadersJson)
	w.WriteHeader(resp.status)
	w.Write(resp.body)
}
