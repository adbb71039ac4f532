package core

import (
	"net/http"

	"github.com/canaryfilms/portal/auth"
)

// This file defines the standardized response format for successful
// authentication. The session itself travels in the cookie; the body lets
// the client render the signed-in user without a second request.
//
// Example:
// {
//   "status": 200,
//   "code": "ok_authentication",
//   "message": "Authentication successful",
//   "data": {
//     "record": {
//       "id": 3,
//       "email": "actor@example.com",
//       "name": "Some Actor",
//       "role": "member",
//       "is_approved": true
//     }
//   }
// }

const (
	// oks for non precomputed, dynamic auth responses
	CodeOkAuthentication = "ok_authentication"
	CodeOkPrincipal      = "ok_principal"
)

// AuthData wraps the signed-in principal for the response body.
type AuthData struct {
	Record auth.Principal `json:"record"`
}

// writeAuthResponse writes a standardized authentication response
func writeAuthResponse(w http.ResponseWriter, p auth.Principal) {
	response := JsonWithData{
		JsonBasic: JsonBasic{
			Status:  http.StatusOK,
			Code:    CodeOkAuthentication,
			Message: "Authentication successful",
		},
		Data: AuthData{Record: p},
	}
	writeJsonWithData(w, response)
}
