// Package apperr defines the client-visible error taxonomy. Codes are
// stable and part of the wire contract; the HTTP status travels with the
// error so the boundary layer can map it without a lookup table.
package apperr

import "net/http"

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func New(code, message string, status int) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

// SignupRestricted covers sign-up collisions (SGR-001, SGR-002).
func SignupRestricted(code, message string) *Error {
	return New(code, message, http.StatusConflict)
}

// SignupInvalid covers sign-up drafts rejected at validation time (SGR-003).
func SignupInvalid(code, message string) *Error {
	return New(code, message, http.StatusBadRequest)
}

// SignoutRestricted is the sign-out variant of SGR-001. It shares the
// code with the sign-up collision; the 401 status disambiguates.
func SignoutRestricted(message string) *Error {
	return New("SGR-001", message, http.StatusUnauthorized)
}

// AuthenticationFailed covers sign-in credential failures (ATH-001, ATH-002).
func AuthenticationFailed(code, message string) *Error {
	return New(code, message, http.StatusUnauthorized)
}

// AuthorizationFailed covers guard failures on protected operations
// (ATHR-001, ATHR-002, ATHR-003).
func AuthorizationFailed(code, message string) *Error {
	return New(code, message, http.StatusForbidden)
}

// NotFound covers missing resources referenced by public uuid
// (USR-001, QUES-001, ANS-001).
func NotFound(code, message string) *Error {
	return New(code, message, http.StatusNotFound)
}

// Unexpected is reserved for parse failures the contract has no better
// answer for (GEN-001).
func Unexpected(message string) *Error {
	return New("GEN-001", message, http.StatusInternalServerError)
}
