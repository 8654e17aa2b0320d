package dispatch

import (
	"errors"

	"CartDesk/internal/session"
)

type ErrorKind string

const (
	KindMissingContent      ErrorKind = "MissingContent"
	KindInvalidSession      ErrorKind = "InvalidSession"
	KindUnknownFunction     ErrorKind = "UnknownFunction"
	KindUserNotFound        ErrorKind = "UserNotFound"
	KindSessionLimitReached ErrorKind = "SessionLimitReached"
	KindInvalidProduct      ErrorKind = "InvalidProduct"
	KindInvalidGSTValue     ErrorKind = "InvalidGstValue"
	KindNotAdmin            ErrorKind = "NotAdmin"
	KindInternal            ErrorKind = "Internal"
)

var (
	ErrMissingContent  = errors.New("no content provided")
	ErrInvalidSession  = errors.New("invalid context id")
	ErrUnknownFunction = errors.New("unknown function")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidGST      = errors.New("gst value is not a boolean")
	ErrNotAdmin        = errors.New("user is not an admin")
)

// classify maps a handler error to the kind and message the caller sees.
// Anything unrecognised is reported as Internal without leaking its text.
func classify(err error) (ErrorKind, string) {
	switch {
	case errors.Is(err, ErrMissingContent):
		return KindMissingContent, "No content provided"
	case errors.Is(err, ErrInvalidSession):
		return KindInvalidSession, "Invalid context ID provided."
	case errors.Is(err, ErrUnknownFunction):
		return KindUnknownFunction, "Unknown function provided."
	case errors.Is(err, ErrUserNotFound):
		return KindUserNotFound, "User doesn't exist!"
	case errors.Is(err, session.ErrMaxLogins):
		return KindSessionLimitReached, "Max logins reached... logout or clear sessions first."
	case errors.Is(err, ErrInvalidProduct):
		return KindInvalidProduct, "Product String value has not been provided."
	case errors.Is(err, ErrInvalidGST):
		return KindInvalidGSTValue, "Boolean GST value has not been provided."
	case errors.Is(err, ErrNotAdmin):
		return KindNotAdmin, "This user is not an Admin!"
	default:
		return KindInternal, "Internal error"
	}
}
