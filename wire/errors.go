package wire

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failure modes the codec and its callers can
// surface. It is a taxonomy, not a family of Go types: every layer of
// this module (wire, wlclient, registry) wraps its failures in an
// *Error carrying one of these kinds so callers can branch on its
// Kind (via KindOf) instead of string-matching.
type ErrorKind int

const (
	// KindIO is an underlying socket failure, surfaced verbatim.
	KindIO ErrorKind = iota
	// KindSocketClosed is an orderly EOF encountered during Recv.
	KindSocketClosed
	// KindOverflowBuffer means a frame would exceed the 65535 bytes the
	// header's 16-bit size field can express. Connection.Send grows its
	// scratch buffer without raising it, but returns it as-is when
	// wire.Serialize rejects such a frame.
	KindOverflowBuffer
	// KindStringTooLong means a caller handed the encoder a string of
	// 2^32-1 bytes or more.
	KindStringTooLong
	// KindEndOfStream means the decoder ran off the end of a frame body.
	KindEndOfStream
	// KindUnknownOpcode means a header's opcode is outside an
	// interface's declared request/event range.
	KindUnknownOpcode
	// KindUnknownEnumTag means a closed enum carried an undefined value.
	KindUnknownEnumTag
	// KindOutdatedCompositorProtocol means the compositor advertised a
	// global at a version lower than the caller required.
	KindOutdatedCompositorProtocol
	// KindEmptyFdQueue means TakeFD was called with nothing queued.
	KindEmptyFdQueue
	// KindOversizedFrame means a frame header's size field is below the
	// 8-byte minimum or not a multiple of 4. Named in spec.md §4.4 and
	// §6.4 but, inconsistently, absent from the §7 taxonomy table — kept
	// here since Connection.Recv needs to report it.
	KindOversizedFrame
	// KindProtocolError means the compositor raised wl_display.error.
	// spec.md's error table does not name this kind explicitly; see
	// DESIGN.md for why it is added rather than folded into KindIO.
	KindProtocolError
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindSocketClosed:
		return "socket_closed"
	case KindOverflowBuffer:
		return "overflow_buffer"
	case KindStringTooLong:
		return "string_too_long"
	case KindEndOfStream:
		return "end_of_stream"
	case KindUnknownOpcode:
		return "unknown_opcode"
	case KindUnknownEnumTag:
		return "unknown_enum_tag"
	case KindOutdatedCompositorProtocol:
		return "outdated_compositor_protocol"
	case KindEmptyFdQueue:
		return "empty_fd_queue"
	case KindOversizedFrame:
		return "oversized_frame"
	case KindProtocolError:
		return "protocol_error"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned across wire, wlclient and
// registry. Op names the failing operation ("wire.Decoder.String",
// "wlclient.Connection.Recv", ...) for context in logs.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds an *Error. err may be nil when the kind is
// self-explanatory (e.g. KindEmptyFdQueue).
func NewError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf reports the ErrorKind carried by err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
