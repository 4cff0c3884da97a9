package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Kind classifies a service failure. Transport maps kinds to status codes.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindInvalidReference
)

// Error carries a taxonomy kind, a caller-safe message and the wrapped
// cause. The cause is for logs only and never reaches the response body.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "service error"
}

func (e *Error) Unwrap() error { return e.Err }

func Invalid(msg string) error          { return &Error{Kind: KindValidation, Msg: msg} }
func NotFound(msg string) error         { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) error         { return &Error{Kind: KindConflict, Msg: msg} }
func InvalidReference(msg string) error { return &Error{Kind: KindInvalidReference, Msg: msg} }
func Internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// storeMsgs are the caller-safe messages for each way a store mutation can
// fail. An empty field means that failure mode is not expected at the call
// site and falls through to internal.
type storeMsgs struct {
	conflict  string
	reference string
	notFound  string
	internal  string
}

// fromStore classifies a store error into the taxonomy. gorm's translated
// sentinels are checked first, with message sniffing as a fallback for
// driver/version combinations that don't translate.
func fromStore(err error, msgs storeMsgs) error {
	switch {
	case msgs.conflict != "" && (errors.Is(err, gorm.ErrDuplicatedKey) || isDupKey(err)):
		return Conflict(msgs.conflict)
	case msgs.reference != "" && (errors.Is(err, gorm.ErrForeignKeyViolated) || isFKViolation(err)):
		return InvalidReference(msgs.reference)
	case msgs.notFound != "" && errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(msgs.notFound)
	default:
		return Internal(msgs.internal, err)
	}
}

func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}

func isFKViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key")
}
