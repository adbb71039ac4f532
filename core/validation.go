package core

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"
)

const MimeTypeJSON = "application/json"

// ValidateContentType checks if the request's Content-Type matches the
// allowed type. Returns the error plus the precomputed response to write.
func (a *App) ValidateContentType(r *http.Request, allowedType string) (error, jsonResponse) {
	errInvalidType := errors.New("invalid content type")
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return errInvalidType, errorInvalidContentType
	}

	// Handle cases where Content-Type includes charset or other parameters
	// e.g. "application/json; charset=utf-8"
	mediaType := strings.Split(contentType, ";")[0]
	mediaType = strings.TrimSpace(mediaType)

	if mediaType != allowedType {
		return errInvalidType, errorInvalidContentType
	}

	return nil, jsonResponse{}
}

// ValidateEmail rejects anything net/mail cannot parse as a single address.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email is empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return err
	}
	if addr.Address != email {
		return errors.New("email has display name or comment")
	}
	return nil
}
