package prog

import (
	"fmt"
	"strings"
	"unsafe"
)

// header mirrors the fixed part of a program: its byte size and capture count.
type header struct {
	size         int
	captureCount int
}

const (
	headerSize = int(unsafe.Sizeof(header{}))
	nodeSize   = int(unsafe.Sizeof(Node{}))
)

// Program is a compiled pattern: a fixed array of nodes whose root, at
// index 0, is a non-capturing group wrapping the whole pattern.
//
// A Program is never modified after Build and is safe for concurrent use.
type Program struct {
	nodes []Node

	// captureCount is the number of capturing groups, numbered from 1 in
	// the order their '(' appears. Matching does not record substrings.
	captureCount int
}

// Root returns the index of the node wrapping the whole pattern
func (p *Program) Root() NodeIndex {
	return 0
}

// Len returns the number of nodes in the program
func (p *Program) Len() int {
	return len(p.nodes)
}

// Node returns the node at id.
// Returns false if id is NoNode or out of range.
func (p *Program) Node(id NodeIndex) (Node, bool) {
	if id < 0 || int(id) >= len(p.nodes) {
		return Node{}, false
	}
	return p.nodes[id], true
}

// CaptureCount returns the number of capturing groups in the pattern
func (p *Program) CaptureCount() int {
	return p.captureCount
}

// Size returns the in-memory size of the program in bytes: a fixed header
// plus one fixed-size record per node.
func (p *Program) Size() int {
	return headerSize + len(p.nodes)*nodeSize
}

// Iter returns an iterator over all nodes in index order
func (p *Program) Iter() *NodeIter {
	return &NodeIter{prog: p}
}

// NodeIter is an iterator over program nodes
type NodeIter struct {
	prog *Program
	pos  int
}

// Next returns the next node and its index.
// Returns (NoNode, Node{}) when iteration is complete.
func (it *NodeIter) Next() (NodeIndex, Node) {
	if it.pos >= len(it.prog.nodes) {
		return NoNode, Node{}
	}
	id := NodeIndex(it.pos)
	it.pos++
	return id, it.prog.nodes[id]
}

// HasNext returns true if there are more nodes to iterate
func (it *NodeIter) HasNext() bool {
	return it.pos < len(it.prog.nodes)
}

// String returns the program listing, one node per line.
func (p *Program) String() string {
	var sb strings.Builder
	_ = Dump(&sb, p)
	return sb.String()
}

// GoString returns a one-line summary of the program
func (p *Program) GoString() string {
	return fmt.Sprintf("Program{nodes: %d, captures: %d, size: %d}",
		len(p.nodes), p.captureCount, p.Size())
}
