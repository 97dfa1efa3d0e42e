package session

import (
	"errors"
	"fmt"

	"github.com/tundrabyte/craftlink/internal/world"
)

// Kind classifies session errors and drives the propagation policy:
// protocol violations, malformed packets and model corruption terminate
// the session; stale references and system failures are isolated.
type Kind int

const (
	KindNone Kind = iota
	KindProtocolViolation
	KindMalformedPacket
	KindStaleReference
	KindSystemFailure
	KindFatalModelCorruption
	KindTransportFailure
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindProtocolViolation:
		return "protocol violation"
	case KindMalformedPacket:
		return "malformed packet"
	case KindStaleReference:
		return "stale reference"
	case KindSystemFailure:
		return "system failure"
	case KindFatalModelCorruption:
		return "fatal model corruption"
	case KindTransportFailure:
		return "transport failure"
	default:
		return "unknown"
	}
}

// Terminating reports whether an error of this kind must tear the session
// down.
func (k Kind) Terminating() bool {
	switch k {
	case KindProtocolViolation, KindMalformedPacket, KindFatalModelCorruption, KindTransportFailure:
		return true
	default:
		return false
	}
}

// Error is a classified session error. Sentinels of each kind work with
// errors.Is:
//
//	if errors.Is(err, session.ErrProtocolViolation) { ... }
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the bare sentinels below act
// as kind matchers.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Err == nil
}

var (
	ErrProtocolViolation     = &Error{Kind: KindProtocolViolation}
	ErrMalformedPacket       = &Error{Kind: KindMalformedPacket}
	ErrStaleReference        = &Error{Kind: KindStaleReference}
	ErrSystemFailure         = &Error{Kind: KindSystemFailure}
	ErrFatalModelCorruption  = &Error{Kind: KindFatalModelCorruption}
	ErrTransportFailure      = &Error{Kind: KindTransportFailure}

	// ErrSessionClosed is returned by operations on a disconnected session.
	ErrSessionClosed = errors.New("session closed")
)

// Violationf builds a protocol-violation error.
func Violationf(format string, args ...any) error {
	return &Error{Kind: KindProtocolViolation, Err: fmt.Errorf(format, args...)}
}

// Malformedf builds a malformed-packet error.
func Malformedf(format string, args ...any) error {
	return &Error{Kind: KindMalformedPacket, Err: fmt.Errorf(format, args...)}
}

// Fatalf builds a model-corruption error; returning it from a handler or
// system forces a disconnect.
func Fatalf(format string, args ...any) error {
	return &Error{Kind: KindFatalModelCorruption, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the kind from an error chain. Unclassified errors map to
// KindNone, except world stale references which map to KindStaleReference.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, world.ErrStaleReference) {
		return KindStaleReference
	}
	return KindNone
}
