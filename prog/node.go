// Package prog implements the compiled program of a small backtracking
// regex engine: the node arena, the recursive-descent compiler that fills
// it and the recursive matcher that interprets it.
//
// A program is a flat slice of fixed-size nodes. Nodes reference each
// other by index only, so the arena can grow during compilation without
// invalidating references. A finished Program is never mutated and may be
// matched from any number of goroutines at once.
//
// Supported syntax: literals, escapes (\n \t \r \v, anything else taken
// literally), '.', '^' at the start of an alternative, '$', character
// classes ([abc], [^a-z], trailing '-' literal), capturing and
// non-capturing groups, alternation and the greedy quantifiers '*', '+'
// and '?'. Quantifiers never give back repetitions: once a repetition has
// consumed all it can, the match commits to that count.
package prog

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/coregx/tinyre/internal/conv"
)

// NodeIndex identifies a node inside a program's arena.
type NodeIndex int32

// NoNode is the reserved "none" reference. It is never a valid index.
const NoNode NodeIndex = -1

// Unbounded is the max bound of '*' and '+'.
const Unbounded uint16 = 0xFFFF

// NodeKind is the type tag of a node. The order is fixed; a persisted
// program would depend on it.
type NodeKind uint8

const (
	// NodeBegin matches (zero-width) at the start of the text.
	NodeBegin NodeKind = iota

	// NodeEnd matches (zero-width) at the end of the text.
	NodeEnd

	// NodeChar matches one literal byte held in Left.
	NodeChar

	// NodeGroup is a capturing group; Left heads the inner chain.
	NodeGroup

	// NodeGroupNoCapture is a (?:...) group; Left heads the inner chain.
	NodeGroupNoCapture

	// NodeClass matches one byte listed by the entry chain in Left.
	NodeClass

	// NodeClassInverse matches one byte not listed by the entry chain in Left.
	NodeClassInverse

	// NodeAny matches any single byte.
	NodeAny

	// NodeGreedy repeats the node in Left; Right packs (min << 16) | max.
	NodeGreedy

	// NodeRange is a class entry matching Left <= b <= Right.
	NodeRange

	// NodeOr tries the chain in Left, then the chain in Right.
	NodeOr
)

// String returns a human-readable representation of the NodeKind
func (k NodeKind) String() string {
	switch k {
	case NodeBegin:
		return "Begin"
	case NodeEnd:
		return "End"
	case NodeChar:
		return "Char"
	case NodeGroup:
		return "Group"
	case NodeGroupNoCapture:
		return "GroupNoCapture"
	case NodeClass:
		return "Class"
	case NodeClassInverse:
		return "ClassInverse"
	case NodeAny:
		return "Any"
	case NodeGreedy:
		return "Greedy"
	case NodeRange:
		return "Range"
	case NodeOr:
		return "Or"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Node is one fixed-size record of a program. The kind determines how
// left and right are read: as node indices (groups, classes, greedy, or)
// or as raw payloads (char, range, greedy bounds).
type Node struct {
	kind  NodeKind
	next  NodeIndex
	left  int32
	right int32
}

// Kind returns the node's type tag
func (n Node) Kind() NodeKind {
	return n.kind
}

// Next returns the following element of the chain, or NoNode.
func (n Node) Next() NodeIndex {
	return n.next
}

// Left returns the raw left field.
func (n Node) Left() int32 {
	return n.left
}

// Right returns the raw right field.
func (n Node) Right() int32 {
	return n.right
}

// Child returns the head of the inner chain for groups and classes, the
// repeated node for greedy nodes and the left alternative for or nodes.
// Returns NoNode for other kinds.
func (n Node) Child() NodeIndex {
	switch n.kind {
	case NodeGroup, NodeGroupNoCapture, NodeClass, NodeClassInverse, NodeGreedy, NodeOr:
		return NodeIndex(n.left)
	}
	return NoNode
}

// Alternative returns the right alternative of an or node, or NoNode.
func (n Node) Alternative() NodeIndex {
	if n.kind == NodeOr {
		return NodeIndex(n.right)
	}
	return NoNode
}

// Byte returns the literal of a char node.
// Returns (0, false) for other kinds.
func (n Node) Byte() (byte, bool) {
	if n.kind == NodeChar {
		return byte(n.left), true
	}
	return 0, false
}

// RangeBounds returns the inclusive bounds of a range node.
// Returns (0, 0, false) for other kinds.
func (n Node) RangeBounds() (lo, hi byte, ok bool) {
	if n.kind == NodeRange {
		return byte(n.left), byte(n.right), true
	}
	return 0, 0, false
}

// Bounds returns the repetition bounds of a greedy node.
// max == Unbounded means no upper limit.
// Returns (0, 0, false) for other kinds.
func (n Node) Bounds() (min, max uint16, ok bool) {
	if n.kind == NodeGreedy {
		min, max = conv.UnpackUint16Pair(n.right)
		return min, max, true
	}
	return 0, 0, false
}

// String returns a human-readable representation of the node
func (n Node) String() string {
	switch n.kind {
	case NodeChar:
		return fmt.Sprintf("Char %s next=%s", quoteByte(byte(n.left)), n.next)
	case NodeRange:
		return fmt.Sprintf("Range %s-%s next=%s", quoteByte(byte(n.left)), quoteByte(byte(n.right)), n.next)
	case NodeGreedy:
		min, max, _ := n.Bounds()
		if max == Unbounded {
			return fmt.Sprintf("Greedy %s{%d,} next=%s", NodeIndex(n.left), min, n.next)
		}
		return fmt.Sprintf("Greedy %s{%d,%d} next=%s", NodeIndex(n.left), min, max, n.next)
	case NodeOr:
		return fmt.Sprintf("Or %s|%s next=%s", NodeIndex(n.left), NodeIndex(n.right), n.next)
	case NodeGroup, NodeGroupNoCapture, NodeClass, NodeClassInverse:
		return fmt.Sprintf("%s %s next=%s", n.kind, NodeIndex(n.left), n.next)
	default:
		return fmt.Sprintf("%s next=%s", n.kind, n.next)
	}
}

// String renders an index, or "-" for NoNode.
func (i NodeIndex) String() string {
	if i == NoNode {
		return "-"
	}
	return strconv.Itoa(int(i))
}

func quoteByte(b byte) string {
	if b < utf8.RuneSelf {
		return strconv.QuoteRune(rune(b))
	}
	return fmt.Sprintf(`'\x%02x'`, b)
}
