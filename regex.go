// Package tinyre provides a compact regex compiler and backtracking matcher
// for embedding.
//
// A pattern is compiled once into an immutable program of typed nodes and
// then matched against byte strings any number of times, from any number
// of goroutines. Matching allocates nothing.
//
// Basic usage:
//
//	re, err := tinyre.Compile(`[a-z]+@(?:[a-z]+\.)+[a-z]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if re.MatchString("user@example.com") {
//	    fmt.Println("matched!")
//	}
//
// Matching is always anchored at both ends: Match reports whether the
// whole input matches. There is no search loop; callers wanting to find a
// match anywhere in a text try successive start positions with
// Program().MatchNode.
//
// Syntax:
//   - literals, and escapes \n \t \r \v (any other escaped byte is literal)
//   - '.' any byte, '^' start of text (first in an alternative), '$' end of text
//   - [abc], [a-z], [^0-9]; a '-' right before ']' is literal
//   - (re) capturing group, (?:re) non-capturing group
//   - re1|re2 alternation, tried left first
//   - a NUL byte ends the pattern
//   - '*', '+', '?' greedy quantifiers
//
// Limitations:
//   - Quantifiers do not backtrack: `a*a` does not match "aaa", since the
//     '*' takes every 'a' and never gives one back.
//   - Capturing groups are counted (NumSubexp) but no substrings are recorded.
//   - No counted repetition {n,m}.
//   - Bytes only, no Unicode classes or case folding.
package tinyre

import (
	"github.com/coregx/tinyre/prog"
)

// Regex represents a compiled regular expression.
//
// A Regex is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := tinyre.MustCompile(`h.llo`)
//	if re.MatchString("hello") {
//	    println("matched!")
//	}
type Regex struct {
	prog    *prog.Program
	pattern string
}

// Regexp is an alias for Regex, for callers used to the stdlib type name.
type Regexp = Regex

// Config controls compilation; see prog.CompilerConfig.
type Config = prog.CompilerConfig

// CompileError is the error returned for invalid patterns.
type CompileError = prog.CompileError

// ErrorKind classifies a CompileError.
type ErrorKind = prog.ErrorKind

// Compile error kinds.
const (
	KindOutOfMemory       = prog.KindOutOfMemory
	KindUnexpectedEnd     = prog.KindUnexpectedEnd
	KindEmptyClass        = prog.KindEmptyClass
	KindInvalidRange      = prog.KindInvalidRange
	KindUnterminatedClass = prog.KindUnterminatedClass
	KindMalformedGroup    = prog.KindMalformedGroup
	KindUnterminatedGroup = prog.KindUnterminatedGroup
)

// Sentinel errors matching each kind, for use with errors.Is.
var (
	ErrOutOfMemory       = prog.ErrOutOfMemory
	ErrUnexpectedEnd     = prog.ErrUnexpectedEnd
	ErrEmptyClass        = prog.ErrEmptyClass
	ErrInvalidRange      = prog.ErrInvalidRange
	ErrUnterminatedClass = prog.ErrUnterminatedClass
	ErrMalformedGroup    = prog.ErrMalformedGroup
	ErrUnterminatedGroup = prog.ErrUnterminatedGroup
)

// Compile compiles a regular expression pattern.
//
// Returns a *CompileError if the pattern is invalid.
//
// Example:
//
//	re, err := tinyre.Compile(`[0-9]+-[0-9]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a regular expression pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var emailRegex = tinyre.MustCompile(`[a-z]+@[a-z]+\.[a-z]+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexp: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := tinyre.DefaultConfig()
//	config.MaxNodes = 64 // refuse large patterns
//	re, err := tinyre.CompileWithConfig("(a|b|c)*", config)
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	p, err := prog.NewCompiler(config).Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regex{
		prog:    p,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() Config {
	return prog.DefaultCompilerConfig()
}

// MatchString compiles pattern and reports whether it matches all of s.
// Callers matching a pattern repeatedly should Compile it once instead.
func MatchString(pattern, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// Match compiles pattern and reports whether it matches all of b.
func Match(pattern string, b []byte) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.Match(b), nil
}

// Match reports whether the regex matches all of b.
func (r *Regex) Match(b []byte) bool {
	return r.prog.Match(b)
}

// MatchString reports whether the regex matches all of s.
func (r *Regex) MatchString(s string) bool {
	return r.prog.MatchString(s)
}

// MatchLength reports whether the regex matches exactly the first n bytes
// of b, for inputs whose length is tracked separately from the buffer.
// It panics if n is negative or larger than len(b).
func (r *Regex) MatchLength(b []byte, n int) bool {
	return r.prog.MatchLength(b, n)
}

// NumSubexp returns the number of capturing groups in the pattern.
func (r *Regex) NumSubexp() int {
	return r.prog.CaptureCount()
}

// Program returns the compiled program. It must not be modified.
func (r *Regex) Program() *prog.Program {
	return r.prog
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// QuoteMeta returns a string that escapes all metacharacters inside the
// argument text; the returned string is a pattern matching the literal
// text. Since a pattern ends at its first NUL byte, the pattern quoted
// from a text containing NUL matches only the text before it.
//
// Example:
//
//	escaped := tinyre.QuoteMeta("1+1=2?")
//	// escaped = `1\+1=2\?`
func QuoteMeta(s string) string {
	const special = `\.+*?()|[]^$`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

// isSpecial returns true if c is in the special characters string.
func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}
