package engine

import (
	"errors"
	"fmt"
)

// RejectKind classifies why a command was refused.
type RejectKind string

const (
	KindInvalidState       RejectKind = "INVALID_STATE"
	KindResourceExhausted  RejectKind = "RESOURCE_EXHAUSTED"
	KindIllegalMove        RejectKind = "ILLEGAL_MOVE"
	KindConfigurationError RejectKind = "CONFIGURATION_ERROR"
)

// Sentinels for errors.Is checks against a *RejectError.
var (
	ErrInvalidState       = errors.New("invalid state")
	ErrResourceExhausted  = errors.New("resource exhausted")
	ErrIllegalMove        = errors.New("illegal move")
	ErrConfigurationError = errors.New("configuration error")
)

// RejectError reports a refused command. A rejected command never changes
// session state; the message is meant to be shown to the player as a notice.
type RejectError struct {
	Kind    RejectKind
	Message string

	// Blocking lists the tiles stacked above a blocked tile, lowest first.
	// Only set for moves refused because the tile is covered.
	Blocking []int
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap maps the kind to its sentinel error.
func (e *RejectError) Unwrap() error {
	switch e.Kind {
	case KindInvalidState:
		return ErrInvalidState
	case KindResourceExhausted:
		return ErrResourceExhausted
	case KindIllegalMove:
		return ErrIllegalMove
	case KindConfigurationError:
		return ErrConfigurationError
	}
	return nil
}

func reject(kind RejectKind, format string, args ...any) *RejectError {
	return &RejectError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
