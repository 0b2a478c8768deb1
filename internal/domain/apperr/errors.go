package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies business failures so the boundary layer can render them
// without knowing which operation produced them.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
)

// Sentinels matched through errors.Is against any *Error of the same kind.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

// Error is the single error type surfaced by the domain and use cases.
//
// Conflict errors raised by a state machine carry the entity kind/id and the
// attempted edge so callers can render a uniform "cannot transition" message.
type Error struct {
	Kind       Kind
	Message    string
	Rule       string
	EntityType string
	EntityID   string
	From       string
	To         string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.From != "" || e.To != "":
		return fmt.Sprintf("%s: %s %s cannot transition from %q to %q", e.Kind, e.EntityType, e.EntityID, e.From, e.To)
	case e.Rule != "":
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Rule)
	case e.EntityType != "" && e.EntityID != "":
		return fmt.Sprintf("%s: %s %s: %s", e.Kind, e.EntityType, e.EntityID, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrConflict) match every conflict regardless of detail.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrConflict:
		return e.Kind == KindConflict
	case ErrNotFound:
		return e.Kind == KindNotFound
	}
	return false
}

// Validation reports malformed input; rule names the violated constraint.
func Validation(rule, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Rule: rule, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a related entity in an incompatible state.
func Conflict(entityType, entityID, format string, args ...any) *Error {
	return &Error{Kind: KindConflict, EntityType: entityType, EntityID: entityID, Message: fmt.Sprintf(format, args...)}
}

// TransitionConflict reports a missing edge in a permit table.
func TransitionConflict(entityType, entityID, from, to string) *Error {
	return &Error{
		Kind:       KindConflict,
		EntityType: entityType,
		EntityID:   entityID,
		From:       from,
		To:         to,
		Message:    "transition not permitted",
	}
}

// NotFound reports an id that does not exist in the caller's tenant.
func NotFound(entityType, entityID string) *Error {
	return &Error{Kind: KindNotFound, EntityType: entityType, EntityID: entityID, Message: "not found"}
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsConflict(err error) bool   { return errors.Is(err, ErrConflict) }
func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
