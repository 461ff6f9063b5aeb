package apperr

import (
	"errors"
	"net/http"
)

// Code is a machine-readable error code shared by the scoring core and the API.
type Code string

const (
	CodeUnknown            Code = "UNKNOWN"
	CodePlayersNotSelected Code = "PLAYERS_NOT_SELECTED"
	CodeNoStrikerSet       Code = "NO_STRIKER_SET"
	CodeInvalidSelection   Code = "INVALID_SELECTION"
	CodeNotBowlingEligible Code = "NOT_BOWLING_ELIGIBLE"
	CodePlayerNotFound     Code = "PLAYER_NOT_FOUND"
	CodeInvalidSetup       Code = "INVALID_SETUP"
	CodeInvalidDelivery    Code = "INVALID_DELIVERY"
	CodeInningsComplete    Code = "INNINGS_COMPLETE"
	CodeInningsInProgress  Code = "INNINGS_IN_PROGRESS"
	CodeMatchComplete      Code = "MATCH_COMPLETE"
	CodeMatchNotStarted    Code = "MATCH_NOT_STARTED"
	CodeMatchNotFound      Code = "MATCH_NOT_FOUND"
	CodeUnauthorized       Code = "UNAUTHORIZED"
)

// HTTPStatus maps a code to the status sent over the API.
func (c Code) HTTPStatus() int {
	switch c {
	case CodePlayersNotSelected, CodeNoStrikerSet, CodeInningsComplete,
		CodeInningsInProgress, CodeMatchComplete, CodeMatchNotStarted:
		return http.StatusConflict
	case CodeInvalidSelection, CodeNotBowlingEligible, CodeInvalidSetup, CodeInvalidDelivery:
		return http.StatusUnprocessableEntity
	case CodePlayerNotFound, CodeMatchNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error is the domain error type.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Human readable message
	Metadata map[string]string // Extra context, e.g. the offending player id
	Cause    error             // Wrapped underlying error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// With returns a copy of e carrying one more metadata entry.
func (e *Error) With(key, value string) *Error {
	md := make(map[string]string, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		md[k] = v
	}
	md[key] = value
	return &Error{Code: e.Code, Message: e.Message, Metadata: md, Cause: e.Cause}
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf extracts the code of the first *Error in err's chain.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// HTTPStatus returns the API status for err, 500 for anything that is not a domain error.
func HTTPStatus(err error) int {
	return CodeOf(err).HTTPStatus()
}
