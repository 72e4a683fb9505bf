package prog

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDump(t *testing.T) {
	p := compileForTest(t, "a|b")

	var sb strings.Builder
	if err := Dump(&sb, p); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	want := fmt.Sprintf("program: 4 nodes, 0 captures, %d bytes\n", p.Size()) +
		"0000 GroupNoCapture 2 next=-\n" +
		"0001 Char 'a' next=-\n" +
		"0002 Or 1|3 next=-\n" +
		"0003 Char 'b' next=-\n"
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("Dump mismatch (-want +got):\n%s", diff)
	}
	if p.String() != sb.String() {
		t.Error("String() differs from Dump output")
	}
}

func TestDump_Class(t *testing.T) {
	p := compileForTest(t, "(x)[^0-9_]")

	want := []string{
		fmt.Sprintf("program: 6 nodes, 1 captures, %d bytes", p.Size()),
		"0000 GroupNoCapture 1 next=-",
		"0001 Group 2 next=3",
		"0002 Char 'x' next=-",
		"0003 ClassInverse 5 next=-",
		"0004 Range '0'-'9' next=-",
		"0005 Char '_' next=4",
	}
	got := strings.Split(strings.TrimSuffix(p.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestDump_NilProgram(t *testing.T) {
	if err := Dump(&strings.Builder{}, nil); err == nil {
		t.Error("Dump(nil) should fail")
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestDump_WriteError(t *testing.T) {
	if err := Dump(failingWriter{}, compileForTest(t, "a")); !errors.Is(err, errWrite) {
		t.Errorf("err = %v, want %v", err, errWrite)
	}
}

func TestProgram_SizeAndSummary(t *testing.T) {
	small := compileForTest(t, "a")
	large := compileForTest(t, "abcdef")

	if got := large.Size() - small.Size(); got != 5*nodeSize {
		t.Errorf("size grows by %d for 5 nodes, want %d", got, 5*nodeSize)
	}
	if small.Size() != headerSize+2*nodeSize {
		t.Errorf("Size() = %d, want %d", small.Size(), headerSize+2*nodeSize)
	}

	want := fmt.Sprintf("Program{nodes: 2, captures: 0, size: %d}", small.Size())
	if got := small.GoString(); got != want {
		t.Errorf("GoString() = %q, want %q", got, want)
	}
}

func TestProgram_Iter(t *testing.T) {
	p := compileForTest(t, "ab")
	it := p.Iter()

	var ids []NodeIndex
	for it.HasNext() {
		id, _ := it.Next()
		ids = append(ids, id)
	}
	if diff := cmp.Diff([]NodeIndex{0, 1, 2}, ids); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	if id, _ := it.Next(); id != NoNode {
		t.Errorf("Next() after end = %d, want NoNode", id)
	}
	if _, ok := p.Node(NoNode); ok {
		t.Error("Node(NoNode) reported ok")
	}
}
