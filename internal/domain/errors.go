package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule, including
// cross-reference checks (e.g. a message addressed through the wrong group).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrInternal marks store-layer faults and violated post-conditions
// (e.g. a delete reporting success but returning no row).
// Handlers should map this to HTTP 500.
var ErrInternal = errors.New("internal error")

// Code is the machine-readable identifier carried on every JSON error
// response. The string values are part of the wire contract and must not
// change.
type Code string

const (
	CodeMissingName        Code = "MISSING_NAME"
	CodeInvalidTripID      Code = "INVALID_TRIP_ID"
	CodeCreateFailed       Code = "CREATE_FAILED"
	CodeInvalidID          Code = "INVALID_ID"
	CodeGroupNotFound      Code = "GROUP_NOT_FOUND"
	CodeInvalidGroupID     Code = "INVALID_GROUP_ID"
	CodeMissingMemberName  Code = "MISSING_MEMBER_NAME"
	CodeInvalidName        Code = "INVALID_NAME"
	CodeInvalidMessage     Code = "INVALID_MESSAGE"
	CodeInvalidMessageID   Code = "INVALID_MESSAGE_ID"
	CodeMessageNotFound    Code = "MESSAGE_NOT_FOUND"
	CodeMessageNotInGroup  Code = "MESSAGE_NOT_IN_GROUP"
	CodeDeleteFailed       Code = "DELETE_FAILED"
	CodeInvalidRequestBody Code = "INVALID_REQUEST_BODY"
	CodeRequestTooLarge    Code = "REQUEST_TOO_LARGE"
	CodeInternalError      Code = "INTERNAL_ERROR"

	CodeMissingRequiredFields Code = "MISSING_REQUIRED_FIELDS"
	CodeTripNotFound          Code = "TRIP_NOT_FOUND"
	CodeInvalidContact        Code = "INVALID_CONTACT"
	CodeInvalidContactID      Code = "INVALID_CONTACT_ID"
	CodeContactNotFound       Code = "CONTACT_NOT_FOUND"
	CodeContactNotInTrip      Code = "CONTACT_NOT_IN_TRIP"
	CodeInvalidAlert          Code = "INVALID_ALERT"
)

// CodedError couples one of the sentinel error kinds with the wire-level code
// and human-readable message for it. errors.Is matches against the kind;
// CodeOf recovers the code in the handler layer.
type CodedError struct {
	kind error
	Code Code
	Msg  string
}

func (e *CodedError) Error() string { return e.Msg }

func (e *CodedError) Unwrap() error { return e.kind }

// Invalid returns a validation-kind coded error (HTTP 400).
func Invalid(code Code, msg string) error {
	return &CodedError{kind: ErrValidation, Code: code, Msg: msg}
}

// NotFoundErr returns a not-found-kind coded error (HTTP 404).
func NotFoundErr(code Code, msg string) error {
	return &CodedError{kind: ErrNotFound, Code: code, Msg: msg}
}

// Internal returns an internal-kind coded error (HTTP 500).
func Internal(code Code, msg string) error {
	return &CodedError{kind: ErrInternal, Code: code, Msg: msg}
}

// CodeOf extracts the wire code from err, or "" when err carries none.
// Wrapping with fmt.Errorf("...: %w", err) preserves the code.
func CodeOf(err error) Code {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}
