package prog

import (
	"errors"
	"strings"
)

// Pattern metacharacters.
const (
	symBegin    = '^'
	symEnd      = '$'
	symBranch   = '|'
	symAny      = '.'
	symEscape   = '\\'
	symZeroMore = '*'
	symOneMore  = '+'
	symZeroOne  = '?'
)

// Compiler compiles patterns into Programs. A Compiler holds only its
// configuration and may be used from several goroutines.
type Compiler struct {
	config CompilerConfig
}

// NewCompiler creates a compiler with the given configuration.
// A zero MaxNodes is replaced by the default.
func NewCompiler(config CompilerConfig) *Compiler {
	if config.MaxNodes == 0 {
		config.MaxNodes = DefaultCompilerConfig().MaxNodes
	}
	return &Compiler{config: config}
}

// NewDefaultCompiler creates a compiler with the default configuration
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultCompilerConfig())
}

// Compile compiles pattern with the default configuration.
func Compile(pattern string) (*Program, error) {
	return NewDefaultCompiler().Compile(pattern)
}

// Compile compiles a pattern into a Program.
//
// The pattern ends at its first NUL byte, if any. On failure no Program is
// returned and nothing allocated for the failed attempt is reachable
// afterwards. Every problem with the pattern is reported as a
// *CompileError; a *BuildError means the compiler itself linked the arena
// inconsistently and does not depend on the pattern being valid.
func (c *Compiler) Compile(pattern string) (*Program, error) {
	src := pattern
	if i := strings.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}

	st := &compilation{
		b:       NewBuilderWithLimits(c.config.InitialCapacity, c.config.MaxNodes),
		pattern: pattern,
		src:     src,
	}

	root, err := st.b.AddGroup(false)
	if err != nil {
		return nil, st.wrap(err)
	}
	body, err := st.list()
	if err != nil {
		return nil, err
	}
	if err := st.b.SetChild(root, body); err != nil {
		return nil, err
	}

	return st.b.Build(st.captures)
}

// compilation is the state of one Compile call: the arena, the cursor into
// the pattern and the running capture count. It never outlives the call.
type compilation struct {
	b        *Builder
	pattern  string
	src      string
	pos      int
	captures int
}

func (c *compilation) failAt(kind ErrorKind, offset int) error {
	return &CompileError{
		Kind:    kind,
		Pattern: c.pattern,
		Offset:  offset,
	}
}

func (c *compilation) fail(kind ErrorKind) error {
	return c.failAt(kind, c.pos)
}

// wrap turns arena exhaustion into a CompileError at the current offset.
func (c *compilation) wrap(err error) error {
	if errors.Is(err, ErrOutOfMemory) {
		return c.fail(KindOutOfMemory)
	}
	return err
}

func (c *compilation) eof() bool {
	return c.pos >= len(c.src)
}

// peek returns the current byte without consuming it, or 0 at the end.
func (c *compilation) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.pos]
}

// fetch consumes the current byte. Running out of pattern here is always
// an error: the grammar required a character.
func (c *compilation) fetch() (byte, error) {
	if c.eof() {
		return 0, c.fail(KindUnexpectedEnd)
	}
	ch := c.src[c.pos]
	c.pos++
	return ch, nil
}

// accept consumes the current byte if it is ch.
func (c *compilation) accept(ch byte) bool {
	if !c.eof() && c.src[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

// list := ['^'] element ('|' list)?
//
// Alternation is right-associative: the Or node's left is everything
// parsed so far and its right is the rest of the list.
func (c *compilation) list() (NodeIndex, error) {
	if c.eof() {
		return NoNode, nil
	}

	head := NoNode
	if c.accept(symBegin) {
		begin, err := c.b.AddBegin()
		if err != nil {
			return NoNode, c.wrap(err)
		}
		head = begin
	}

	elem, err := c.element()
	if err != nil {
		return NoNode, err
	}
	if head != NoNode {
		if err := c.b.SetNext(head, elem); err != nil {
			return NoNode, err
		}
	} else {
		head = elem
	}

	if c.accept(symBranch) {
		or, err := c.b.AddOr(head, NoNode)
		if err != nil {
			return NoNode, c.wrap(err)
		}
		right, err := c.list()
		if err != nil {
			return NoNode, err
		}
		if err := c.b.SetAlternative(or, right); err != nil {
			return NoNode, err
		}
		head = or
	}

	return head, nil
}

// element := atom [quantifier] [element]
func (c *compilation) element() (NodeIndex, error) {
	var (
		atom NodeIndex
		err  error
	)

	switch c.peek() {
	case symEnd:
		c.pos++
		atom, err = c.b.AddEnd()
		err = c.wrap(err)
	case symAny:
		c.pos++
		atom, err = c.b.AddAny()
		err = c.wrap(err)
	case '[':
		atom, err = c.class()
	case '(':
		atom, err = c.group()
	default:
		atom, err = c.char()
	}
	if err != nil {
		return NoNode, err
	}

	if min, max, ok := quantifier(c.peek()); ok {
		c.pos++
		atom, err = c.b.AddGreedy(atom, min, max)
		if err != nil {
			return NoNode, c.wrap(err)
		}
	}

	if !c.eof() && !endsElement(c.peek()) {
		next, err := c.element()
		if err != nil {
			return NoNode, err
		}
		if err := c.b.SetNext(atom, next); err != nil {
			return NoNode, err
		}
	}

	return atom, nil
}

// quantifier reports the bounds of a quantifier symbol.
func quantifier(ch byte) (min, max uint16, ok bool) {
	switch ch {
	case symZeroMore:
		return 0, Unbounded, true
	case symOneMore:
		return 1, Unbounded, true
	case symZeroOne:
		return 0, 1, true
	}
	return 0, 0, false
}

// endsElement reports whether ch terminates a sequence of elements.
func endsElement(ch byte) bool {
	switch ch {
	case symBranch, symZeroMore, symOneMore, symZeroOne, ')':
		return true
	}
	return false
}

// char compiles a literal, possibly escaped.
func (c *compilation) char() (NodeIndex, error) {
	ch, err := c.fetch()
	if err != nil {
		return NoNode, err
	}
	if ch == symEscape {
		if ch, err = c.fetch(); err != nil {
			return NoNode, err
		}
		ch = unescape(ch)
	}
	id, err := c.b.AddChar(ch)
	return id, c.wrap(err)
}

func unescape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'v':
		return '\v'
	}
	return ch
}

// group := '(' ['?:'] list ')'
func (c *compilation) group() (NodeIndex, error) {
	c.pos++ // '('

	capture := true
	if c.accept('?') {
		ch, err := c.fetch()
		if err != nil {
			return NoNode, err
		}
		if ch != ':' {
			return NoNode, c.failAt(KindMalformedGroup, c.pos-1)
		}
		capture = false
	} else {
		c.captures++
	}

	g, err := c.b.AddGroup(capture)
	if err != nil {
		return NoNode, c.wrap(err)
	}
	body, err := c.list()
	if err != nil {
		return NoNode, err
	}
	if err := c.b.SetChild(g, body); err != nil {
		return NoNode, err
	}

	if !c.accept(')') {
		return NoNode, c.fail(KindUnterminatedGroup)
	}
	return g, nil
}

// class := '[' ['^'] class-body ']'
//
// Entries are chained in reverse: each new entry becomes the head and
// points at the previous one. A '-' after a literal promotes that literal
// in place to a range ending at the following byte, unless the '-' is
// the last byte before ']', in which case it is a literal. After a range
// no literal is pending, so in "a-z-9" the second '-' is a literal.
func (c *compilation) class() (NodeIndex, error) {
	c.pos++ // '['

	cls, err := c.b.AddClass(c.accept('^'))
	if err != nil {
		return NoNode, c.wrap(err)
	}
	if c.peek() == ']' {
		return NoNode, c.fail(KindEmptyClass)
	}

	chain := NoNode
	var pending byte
	hasPending := false

	for c.peek() != ']' {
		if c.eof() {
			return NoNode, c.fail(KindUnterminatedClass)
		}

		var entry NodeIndex
		if hasPending && c.accept('-') {
			hi, err := c.fetch()
			if err != nil {
				return NoNode, err
			}
			if hi == ']' {
				c.pos--
				dash, err := c.b.AddChar('-')
				if err != nil {
					return NoNode, c.wrap(err)
				}
				if err := c.b.SetNext(dash, chain); err != nil {
					return NoNode, err
				}
				chain = dash
				break
			}
			if pending > hi {
				return NoNode, c.failAt(KindInvalidRange, c.pos-1)
			}

			// The pending literal is the current head; pop it, promote
			// it and push it back below.
			entry = chain
			n, ok := c.b.Node(chain)
			if !ok {
				return NoNode, &BuildError{
					Message: "range without a pending class entry",
					Node:    chain,
				}
			}
			chain = n.Next()
			if err := c.b.PromoteRange(entry, hi); err != nil {
				return NoNode, err
			}
			hasPending = false
		} else {
			ch, err := c.fetch()
			if err != nil {
				return NoNode, err
			}
			pending, hasPending = ch, true
			if entry, err = c.b.AddChar(ch); err != nil {
				return NoNode, c.wrap(err)
			}
		}

		if err := c.b.SetNext(entry, chain); err != nil {
			return NoNode, err
		}
		chain = entry
	}

	if err := c.b.SetChild(cls, chain); err != nil {
		return NoNode, err
	}
	c.pos++ // ']'
	return cls, nil
}
