package prog

import (
	"fmt"
	"math"

	"github.com/coregx/tinyre/internal/conv"
)

// Builder is the growable node arena used while compiling one pattern.
//
// Nodes are appended and never removed, so an index handed out by an Add
// method stays valid for the builder's lifetime even though the backing
// slice may be reallocated. Builder never exposes pointers into the arena;
// all mutation goes through index-based setters.
type Builder struct {
	nodes    []Node
	maxNodes int
}

// NewBuilder creates a builder with the default capacity and node limit
func NewBuilder() *Builder {
	cfg := DefaultCompilerConfig()
	return NewBuilderWithLimits(cfg.InitialCapacity, cfg.MaxNodes)
}

// NewBuilderWithLimits creates a builder with the given initial capacity.
// Allocating more than maxNodes nodes fails with ErrOutOfMemory; a
// maxNodes <= 0 means only the index space limits the arena.
func NewBuilderWithLimits(capacity, maxNodes int) *Builder {
	if maxNodes <= 0 || maxNodes > math.MaxInt32 {
		maxNodes = math.MaxInt32
	}
	if capacity < 0 {
		capacity = 0
	}
	if capacity > maxNodes {
		capacity = maxNodes
	}
	return &Builder{
		nodes:    make([]Node, 0, capacity),
		maxNodes: maxNodes,
	}
}

// BuildError reports misuse of the Builder API, such as a reference to a
// node that does not exist.
type BuildError struct {
	Message string
	Node    NodeIndex
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.Node != NoNode {
		return fmt.Sprintf("program build error at node %d: %s", e.Node, e.Message)
	}
	return fmt.Sprintf("program build error: %s", e.Message)
}

func (b *Builder) add(kind NodeKind, left, right int32) (NodeIndex, error) {
	if len(b.nodes) >= b.maxNodes {
		return NoNode, ErrOutOfMemory
	}
	id := NodeIndex(conv.IntToInt32(len(b.nodes)))
	b.nodes = append(b.nodes, Node{
		kind:  kind,
		next:  NoNode,
		left:  left,
		right: right,
	})
	return id, nil
}

// AddBegin adds a '^' node
func (b *Builder) AddBegin() (NodeIndex, error) {
	return b.add(NodeBegin, int32(NoNode), int32(NoNode))
}

// AddEnd adds a '$' node
func (b *Builder) AddEnd() (NodeIndex, error) {
	return b.add(NodeEnd, int32(NoNode), int32(NoNode))
}

// AddAny adds a '.' node
func (b *Builder) AddAny() (NodeIndex, error) {
	return b.add(NodeAny, int32(NoNode), int32(NoNode))
}

// AddChar adds a node matching the literal byte c
func (b *Builder) AddChar(c byte) (NodeIndex, error) {
	return b.add(NodeChar, int32(c), int32(NoNode))
}

// AddGroup adds a group node with an empty body; fill it with SetChild.
func (b *Builder) AddGroup(capture bool) (NodeIndex, error) {
	kind := NodeGroupNoCapture
	if capture {
		kind = NodeGroup
	}
	return b.add(kind, int32(NoNode), int32(NoNode))
}

// AddClass adds a class node with no entries; attach the entry chain
// with SetChild.
func (b *Builder) AddClass(inverse bool) (NodeIndex, error) {
	kind := NodeClass
	if inverse {
		kind = NodeClassInverse
	}
	return b.add(kind, int32(NoNode), int32(NoNode))
}

// AddGreedy wraps sub in a repetition of min to max times.
// Pass Unbounded as max for no upper limit.
func (b *Builder) AddGreedy(sub NodeIndex, min, max uint16) (NodeIndex, error) {
	return b.add(NodeGreedy, int32(sub), conv.PackUint16Pair(min, max))
}

// AddOr adds an alternation of the chains headed by left and right.
func (b *Builder) AddOr(left, right NodeIndex) (NodeIndex, error) {
	return b.add(NodeOr, int32(left), int32(right))
}

func (b *Builder) at(id NodeIndex) (*Node, error) {
	if id < 0 || int(id) >= len(b.nodes) {
		return nil, &BuildError{
			Message: "node index out of bounds",
			Node:    id,
		}
	}
	return &b.nodes[id], nil
}

// SetNext links next after id in a sequential chain.
func (b *Builder) SetNext(id, next NodeIndex) error {
	n, err := b.at(id)
	if err != nil {
		return err
	}
	n.next = next
	return nil
}

// SetChild sets the inner chain of a group or class, or the left
// alternative of an or node.
func (b *Builder) SetChild(id, child NodeIndex) error {
	n, err := b.at(id)
	if err != nil {
		return err
	}
	switch n.kind {
	case NodeGroup, NodeGroupNoCapture, NodeClass, NodeClassInverse, NodeOr:
		n.left = int32(child)
		return nil
	default:
		return &BuildError{
			Message: fmt.Sprintf("cannot set child of %s node", n.kind),
			Node:    id,
		}
	}
}

// SetAlternative sets the right alternative of an or node.
func (b *Builder) SetAlternative(id, alt NodeIndex) error {
	n, err := b.at(id)
	if err != nil {
		return err
	}
	if n.kind != NodeOr {
		return &BuildError{
			Message: fmt.Sprintf("expected Or node, got %s", n.kind),
			Node:    id,
		}
	}
	n.right = int32(alt)
	return nil
}

// PromoteRange turns the char node id into a range from its literal to
// hi, in place. The node keeps its index and its next link.
func (b *Builder) PromoteRange(id NodeIndex, hi byte) error {
	n, err := b.at(id)
	if err != nil {
		return err
	}
	if n.kind != NodeChar {
		return &BuildError{
			Message: fmt.Sprintf("expected Char node, got %s", n.kind),
			Node:    id,
		}
	}
	n.kind = NodeRange
	n.right = int32(hi)
	return nil
}

// Node returns a copy of the node at id.
func (b *Builder) Node(id NodeIndex) (Node, bool) {
	n, err := b.at(id)
	if err != nil {
		return Node{}, false
	}
	return *n, true
}

// Len returns the number of nodes allocated so far
func (b *Builder) Len() int {
	return len(b.nodes)
}

// Validate checks that every reference points at an existing node or is
// NoNode, and that class chains only hold Char and Range entries.
func (b *Builder) Validate() error {
	valid := func(ref NodeIndex) bool {
		return ref == NoNode || (ref >= 0 && int(ref) < len(b.nodes))
	}

	for i, n := range b.nodes {
		id := NodeIndex(i)
		if !valid(n.next) {
			return &BuildError{
				Message: fmt.Sprintf("invalid next node %d", n.next),
				Node:    id,
			}
		}
		switch n.kind {
		case NodeGroup, NodeGroupNoCapture, NodeGreedy:
			if !valid(NodeIndex(n.left)) {
				return &BuildError{
					Message: fmt.Sprintf("invalid child node %d", n.left),
					Node:    id,
				}
			}
		case NodeOr:
			if !valid(NodeIndex(n.left)) || !valid(NodeIndex(n.right)) {
				return &BuildError{
					Message: fmt.Sprintf("invalid alternatives %d|%d", n.left, n.right),
					Node:    id,
				}
			}
		case NodeClass, NodeClassInverse:
			for e := NodeIndex(n.left); e != NoNode; e = b.nodes[e].next {
				if !valid(e) {
					return &BuildError{
						Message: fmt.Sprintf("invalid class entry %d", e),
						Node:    id,
					}
				}
				if k := b.nodes[e].kind; k != NodeChar && k != NodeRange {
					return &BuildError{
						Message: fmt.Sprintf("class entry %d is a %s node", e, k),
						Node:    id,
					}
				}
			}
		}
	}
	return nil
}

// Build validates the arena and copies it into an immutable Program.
// The builder may be discarded afterwards.
func (b *Builder) Build(captureCount int) (*Program, error) {
	if len(b.nodes) == 0 {
		return nil, &BuildError{Message: "empty program", Node: NoNode}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	nodes := make([]Node, len(b.nodes))
	copy(nodes, b.nodes)
	return &Program{
		nodes:        nodes,
		captureCount: captureCount,
	}, nil
}
