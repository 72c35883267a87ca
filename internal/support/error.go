package support

import "fmt"

// ErrorKind classifies the failures the engine surfaces to callers. The
// collector and the differ never fail (they always return a possibly-empty
// result); the parser, verifier, and orchestrator return typed errors built
// from this enum.
type ErrorKind uint8

const (
	// ParseErrorKind means the IR failed to parse.
	ParseErrorKind ErrorKind = iota
	// VerifyErrorKind means the IR failed structural verification, either
	// before or after the pass pipeline ran.
	VerifyErrorKind
	// IoErrorKind means a requested file could not be opened or read.
	IoErrorKind
	// ConfigErrorKind means mutually exclusive inputs were supplied (both a
	// single file and a before/after pair, or one of the pair without the
	// other).
	ConfigErrorKind
	// InternalErrorKind means an invariant was violated: a nil module, a
	// corrupt alignment, or similar engine-internal defect.
	InternalErrorKind
)

func (k ErrorKind) String() string {
	switch k {
	case ParseErrorKind:
		return "ParseError"
	case VerifyErrorKind:
		return "VerifyError"
	case IoErrorKind:
		return "IoError"
	case ConfigErrorKind:
		return "ConfigError"
	case InternalErrorKind:
		return "InternalError"
	default:
		return "InternalError"
	}
}

// Error is the single error type the engine returns. It carries a closed
// Kind and the underlying cause, and is never converted to a silent
// default (the one documented exception is the record parser's per-record
// skip, which is not an error at all).
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func newError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// NewParseError builds a ParseError wrapping the parser's underlying cause.
func NewParseError(msg string, cause error) *Error {
	return newError(ParseErrorKind, msg, cause)
}

// NewVerifyError builds a VerifyError describing a structural verification
// failure.
func NewVerifyError(msg string) *Error {
	return newError(VerifyErrorKind, msg, nil)
}

// NewIoError builds an IoError wrapping the underlying filesystem failure.
func NewIoError(msg string, cause error) *Error {
	return newError(IoErrorKind, msg, cause)
}

// NewConfigError builds a ConfigError describing a misconfigured input set.
func NewConfigError(msg string) *Error {
	return newError(ConfigErrorKind, msg, nil)
}

// NewInternalError builds an InternalError describing a violated invariant.
func NewInternalError(msg string) *Error {
	return newError(InternalErrorKind, msg, nil)
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
