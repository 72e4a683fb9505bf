package prog

import (
	"errors"
	"fmt"
)

// Compile errors, one per ErrorKind. A *CompileError unwraps to the
// sentinel of its kind, so errors.Is(err, ErrEmptyClass) works.
var (
	// ErrOutOfMemory indicates the node arena could not grow any further
	ErrOutOfMemory = errors.New("out of memory")

	// ErrUnexpectedEnd indicates the pattern ended where a character was required
	ErrUnexpectedEnd = errors.New("unexpected end of pattern")

	// ErrEmptyClass indicates a character class with no entries, e.g. "[]"
	ErrEmptyClass = errors.New("empty character class")

	// ErrInvalidRange indicates a class range whose low bound exceeds its high bound
	ErrInvalidRange = errors.New("invalid character class range")

	// ErrUnterminatedClass indicates a character class missing its closing ']'
	ErrUnterminatedClass = errors.New("missing closing ]")

	// ErrMalformedGroup indicates "(?" not followed by ':'
	ErrMalformedGroup = errors.New("invalid group introducer")

	// ErrUnterminatedGroup indicates a group missing its closing ')'
	ErrUnterminatedGroup = errors.New("missing closing )")
)

// ErrorKind classifies a compile error.
type ErrorKind uint8

const (
	KindOutOfMemory ErrorKind = iota
	KindUnexpectedEnd
	KindEmptyClass
	KindInvalidRange
	KindUnterminatedClass
	KindMalformedGroup
	KindUnterminatedGroup
)

var kindErrors = [...]error{
	KindOutOfMemory:       ErrOutOfMemory,
	KindUnexpectedEnd:     ErrUnexpectedEnd,
	KindEmptyClass:        ErrEmptyClass,
	KindInvalidRange:      ErrInvalidRange,
	KindUnterminatedClass: ErrUnterminatedClass,
	KindMalformedGroup:    ErrMalformedGroup,
	KindUnterminatedGroup: ErrUnterminatedGroup,
}

var kindNames = [...]string{
	KindOutOfMemory:       "OutOfMemory",
	KindUnexpectedEnd:     "UnexpectedEnd",
	KindEmptyClass:        "EmptyClass",
	KindInvalidRange:      "InvalidRange",
	KindUnterminatedClass: "UnterminatedClass",
	KindMalformedGroup:    "MalformedGroup",
	KindUnterminatedGroup: "UnterminatedGroup",
}

// String returns the kind's name, e.g. "EmptyClass".
func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Unknown(%d)", k)
}

// Err returns the sentinel error for the kind, or nil for unknown kinds.
func (k ErrorKind) Err() error {
	if int(k) < len(kindErrors) {
		return kindErrors[k]
	}
	return nil
}

// ParseErrorKind looks a kind up by the name String returns.
func ParseErrorKind(name string) (ErrorKind, bool) {
	for k, n := range kindNames {
		if n == name {
			return ErrorKind(k), true
		}
	}
	return 0, false
}

// CompileError reports why a pattern failed to compile.
type CompileError struct {
	Kind    ErrorKind
	Pattern string

	// Offset is the byte offset in Pattern where the error was detected.
	Offset int
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("error parsing regexp: %v at offset %d: `%s`", e.Kind.Err(), e.Offset, e.Pattern)
}

// Unwrap returns the sentinel error of the kind
func (e *CompileError) Unwrap() error {
	return e.Kind.Err()
}

// KindOf extracts the ErrorKind from an error chain.
// Returns false if err does not contain a *CompileError.
func KindOf(err error) (ErrorKind, bool) {
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "regexp: invalid config: " + e.Field + ": " + e.Message
}
