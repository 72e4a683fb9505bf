package prog

import (
	"fmt"
	"io"
)

// Dump writes a readable listing of p to w: a summary line followed by
// one line per node, in index order.
//
//	program: 4 nodes, 0 captures, 80 bytes
//	0000 GroupNoCapture 1 next=-
//	0001 Char 'a' next=3
//	...
func Dump(w io.Writer, p *Program) error {
	if p == nil {
		return fmt.Errorf("nil program")
	}
	if _, err := fmt.Fprintf(w, "program: %d nodes, %d captures, %d bytes\n",
		p.Len(), p.CaptureCount(), p.Size()); err != nil {
		return err
	}
	for it := p.Iter(); it.HasNext(); {
		id, n := it.Next()
		if _, err := fmt.Fprintf(w, "%04d %s\n", int(id), n); err != nil {
			return err
		}
	}
	return nil
}
