package prog

// NoMatch is the cursor MatchNode returns when the node does not match.
const NoMatch = -1

// input is the text a program can be matched against. Both forms are
// indexed byte by byte; no conversion or allocation takes place.
type input interface {
	~string | ~[]byte
}

// Match reports whether p matches all of text.
func (p *Program) Match(text []byte) bool {
	return matchNode(p, p.Root(), text, 0, 0, len(text)) == len(text)
}

// MatchString reports whether p matches all of s.
func (p *Program) MatchString(s string) bool {
	return matchNode(p, p.Root(), s, 0, 0, len(s)) == len(s)
}

// MatchLength reports whether p matches exactly the first n bytes of
// text. It panics if n is negative or larger than len(text).
func (p *Program) MatchLength(text []byte, n int) bool {
	return p.Match(text[:n])
}

// MatchNode matches the single node id at cursor at. The text is
// text[begin:end]: '^' matches only at begin, '$' only at end, and no node
// reads at or past end. Chains hanging off id (group bodies, alternatives)
// are followed; id's own next link is not.
//
// Returns the cursor after the match, or NoMatch.
func (p *Program) MatchNode(id NodeIndex, text []byte, at, begin, end int) int {
	if begin < 0 || end > len(text) || at < begin || at > end {
		return NoMatch
	}
	return matchNode(p, id, text, at, begin, end)
}

// MatchNodeString is MatchNode for string input.
func (p *Program) MatchNodeString(id NodeIndex, text string, at, begin, end int) int {
	if begin < 0 || end > len(text) || at < begin || at > end {
		return NoMatch
	}
	return matchNode(p, id, text, at, begin, end)
}

// matchNode is the backtracking interpreter. It recurses once per level
// of pattern nesting; only the greedy loop depends on the input length.
//
//nolint:gocyclo,cyclop // complexity is inherent to node dispatch
func matchNode[T input](p *Program, id NodeIndex, text T, at, begin, end int) int {
	if id < 0 || int(id) >= len(p.nodes) {
		return NoMatch
	}
	n := &p.nodes[id]

	switch n.kind {
	case NodeAny:
		if at >= end {
			return NoMatch
		}
		return at + 1

	case NodeChar:
		if at >= end || text[at] != byte(n.left) {
			return NoMatch
		}
		return at + 1

	case NodeBegin:
		if at == begin {
			return at
		}
		return NoMatch

	case NodeEnd:
		if at == end {
			return at
		}
		return NoMatch

	case NodeGreedy:
		return matchGreedy(p, n, text, at, begin, end)

	case NodeClass, NodeClassInverse:
		if at >= end {
			return NoMatch
		}
		found, ok := matchClass(p, NodeIndex(n.left), text[at])
		if ok && found == (n.kind == NodeClass) {
			return at + 1
		}
		return NoMatch

	case NodeOr:
		if pos := matchChain(p, NodeIndex(n.left), text, at, begin, end); pos != NoMatch {
			return pos
		}
		return matchChain(p, NodeIndex(n.right), text, at, begin, end)

	case NodeGroup, NodeGroupNoCapture:
		return matchChain(p, NodeIndex(n.left), text, at, begin, end)

	case NodeRange:
		// Only meaningful as a class entry.
		return NoMatch
	}

	return NoMatch
}

// matchChain matches head and every node linked after it, threading the
// cursor through. An empty chain never matches.
func matchChain[T input](p *Program, head NodeIndex, text T, at, begin, end int) int {
	if head == NoNode {
		return NoMatch
	}
	for id := head; id != NoNode; id = p.nodes[id].next {
		if at = matchNode(p, id, text, at, begin, end); at == NoMatch {
			return NoMatch
		}
	}
	return at
}

// matchGreedy repeats the wrapped node as often as it matches, up to max
// times, and commits to that count: a failure of whatever follows does not
// make it retry with fewer repetitions. Repetition also stops at the end
// of the text and after a repetition that consumed nothing.
func matchGreedy[T input](p *Program, n *Node, text T, at, begin, end int) int {
	min, max, _ := n.Bounds()
	sub := NodeIndex(n.left)

	count := 0
	handled := at
	for max == Unbounded || count < int(max) {
		next := matchNode(p, sub, text, handled, begin, end)
		if next == NoMatch {
			break
		}
		count++
		progressed := next != handled
		handled = next
		if handled >= end || !progressed {
			break
		}
	}

	if count >= int(min) && (max == Unbounded || count <= int(max)) {
		return handled
	}
	return NoMatch
}

// matchClass reports whether c is listed by the entry chain at head. ok is
// false if the chain holds anything but Char and Range entries, in which
// case the class never matches.
func matchClass(p *Program, head NodeIndex, c byte) (found, ok bool) {
	for id := head; id != NoNode; {
		e := &p.nodes[id]
		switch e.kind {
		case NodeChar:
			if c == byte(e.left) {
				return true, true
			}
		case NodeRange:
			if c >= byte(e.left) && c <= byte(e.right) {
				return true, true
			}
		default:
			return false, false
		}
		id = e.next
	}
	return false, true
}
