package main

import (
	"fmt"
	"io"

	"github.com/coregx/tinyre"
	"github.com/coregx/tinyre/prog"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: dump requires exactly one pattern, got %d args", cli.ErrUsage, len(args))
	}
	re, err := compile(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	if cfg.YAML {
		return dumpYAML(cc.Out, re)
	}
	return prog.Dump(cc.Out, re.Program())
}

// programDoc is the YAML form of a compiled program.
type programDoc struct {
	Pattern  string    `yaml:"pattern"`
	Captures int       `yaml:"captures"`
	Size     int       `yaml:"size"`
	Nodes    []nodeDoc `yaml:"nodes"`
}

// nodeDoc is one node. Links are node indices, -1 for none; only the
// payload fields of the node's kind are set.
type nodeDoc struct {
	Index int    `yaml:"index"`
	Kind  string `yaml:"kind"`
	Next  int    `yaml:"next"`
	Child *int   `yaml:"child,omitempty"`
	Alt   *int   `yaml:"alt,omitempty"`
	Char  string `yaml:"char,omitempty"`
	Lo    string `yaml:"lo,omitempty"`
	Hi    string `yaml:"hi,omitempty"`
	Min   *int   `yaml:"min,omitempty"`
	Max   *int   `yaml:"max,omitempty"`
}

func newProgramDoc(re *tinyre.Regex) programDoc {
	p := re.Program()
	doc := programDoc{
		Pattern:  re.String(),
		Captures: p.CaptureCount(),
		Size:     p.Size(),
		Nodes:    make([]nodeDoc, 0, p.Len()),
	}
	for it := p.Iter(); it.HasNext(); {
		id, n := it.Next()
		doc.Nodes = append(doc.Nodes, newNodeDoc(id, n))
	}
	return doc
}

func newNodeDoc(id prog.NodeIndex, n prog.Node) nodeDoc {
	d := nodeDoc{
		Index: int(id),
		Kind:  n.Kind().String(),
		Next:  int(n.Next()),
	}
	switch n.Kind() {
	case prog.NodeChar:
		c, _ := n.Byte()
		d.Char = string([]byte{c})
	case prog.NodeRange:
		lo, hi, _ := n.RangeBounds()
		d.Lo, d.Hi = string([]byte{lo}), string([]byte{hi})
	case prog.NodeGreedy:
		min, max, _ := n.Bounds()
		d.Child = intp(int(n.Child()))
		d.Min = intp(int(min))
		if max != prog.Unbounded {
			d.Max = intp(int(max))
		}
	case prog.NodeOr:
		d.Child = intp(int(n.Child()))
		d.Alt = intp(int(n.Alternative()))
	case prog.NodeGroup, prog.NodeGroupNoCapture, prog.NodeClass, prog.NodeClassInverse:
		d.Child = intp(int(n.Child()))
	}
	return d
}

func intp(v int) *int {
	return &v
}

func dumpYAML(w io.Writer, re *tinyre.Regex) error {
	out, err := yaml.Marshal(newProgramDoc(re))
	if err != nil {
		return fmt.Errorf("error encoding program: %w", err)
	}
	_, err = w.Write(out)
	return err
}
