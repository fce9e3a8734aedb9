package loops

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

func mustBuild(t *testing.T, src string) *Index {
	t.Helper()
	index, err := Build([]byte(src), nil)
	if err != nil {
		t.Fatal(err)
	}
	return index
}

func TestBuildEmpty(t *testing.T) {
	index := mustBuild(t, "")
	if index.Len() != 0 {
		t.Fatalf("got %v", index.Len())
	}
	if index.First() != None {
		t.Fatal()
	}
	for range index.Walk() {
		t.Fatal("should be empty")
	}
}

func TestBuildEmptyLoop(t *testing.T) {
	index := mustBuild(t, "[]")
	if index.Len() != 1 {
		t.Fatalf("got %v", index.Len())
	}
	node := index.Node(index.First())
	if node.Begin != 0 || node.End != 1 {
		t.Fatalf("got %+v", node)
	}
	if node.Child != None || node.Next != None || node.Parent != None {
		t.Fatalf("got %+v", node)
	}
	for _, pos := range []int{0, 1} {
		if id, ok := index.At(pos); !ok || id != 0 {
			t.Fatalf("At(%d) = %v %v", pos, id, ok)
		}
	}
	if _, ok := index.At(2); ok {
		t.Fatal()
	}
	if _, ok := index.At(-1); ok {
		t.Fatal()
	}
}

func TestBuildLinks(t *testing.T) {
	//                   0123456789012345
	index := mustBuild(t, "+[a[b]c[d[]]]e[]")

	want := []Node{
		{Begin: 1, End: 12, Child: 1, Next: 4, Parent: None},
		{Begin: 3, End: 5, Child: None, Next: 2, Parent: 0},
		{Begin: 7, End: 11, Child: 3, Next: None, Parent: 0},
		{Begin: 9, End: 10, Child: None, Next: None, Parent: 2},
		{Begin: 14, End: 15, Child: None, Next: None, Parent: None},
	}
	if index.Len() != len(want) {
		t.Fatalf("got %v", index.Len())
	}
	for i, node := range want {
		if got := index.Node(NodeID(i)); got != node {
			t.Fatalf("node %d: got %+v, want %+v", i, got, node)
		}
	}

	var roots []NodeID
	for id := range index.Roots() {
		roots = append(roots, id)
	}
	if len(roots) != 2 || roots[0] != 0 || roots[1] != 4 {
		t.Fatalf("got %v", roots)
	}

	var children []NodeID
	for id := range index.Children(0) {
		children = append(children, id)
	}
	if len(children) != 2 || children[0] != 1 || children[1] != 2 {
		t.Fatalf("got %v", children)
	}

	if d := index.Depth(3); d != 2 {
		t.Fatalf("got %v", d)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		src    string
		err    error
		offset int
	}{
		{"[", ErrUnmatchedOpen, 0},
		{"]", ErrUnmatchedClose, 0},
		{"+[[-]", ErrUnmatchedOpen, 1},
		{"[]][", ErrUnmatchedClose, 2},
		{"[[]", ErrUnmatchedOpen, 0},
		{"[][", ErrUnmatchedOpen, 2},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			index, err := Build([]byte(test.src), nil)
			if index != nil {
				t.Fatal("partial index returned")
			}
			if !errors.Is(err, test.err) {
				t.Fatalf("got %v", err)
			}
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("got %T", err)
			}
			if e.ErrorOffset() != test.offset {
				t.Fatalf("got %v", e.ErrorOffset())
			}
		})
	}
}

func TestBuildMaxDepth(t *testing.T) {
	src := []byte("[[[]]]")
	if _, err := Build(src, &Options{MaxDepth: 3}); err != nil {
		t.Fatal(err)
	}
	_, err := Build(src, &Options{MaxDepth: 2})
	if !errors.Is(err, ErrTooDeep) {
		t.Fatalf("got %v", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Offset != 2 {
		t.Fatalf("got %v", err)
	}
}

func TestBuildDeepNesting(t *testing.T) {
	const depth = 100_000
	src := strings.Repeat("[", depth) + strings.Repeat("]", depth)
	index := mustBuild(t, src)
	if index.Len() != depth {
		t.Fatalf("got %v", index.Len())
	}
	last := NodeID(depth - 1)
	if d := index.Depth(last); d != depth-1 {
		t.Fatalf("got %v", d)
	}
	if node := index.Node(last); node.Begin != depth-1 || node.End != depth {
		t.Fatalf("got %+v", node)
	}
}

// randomProgram returns a well-formed program mixing brackets with other bytes.
func randomProgram(r *rand.Rand, n int) []byte {
	var buf []byte
	open := 0
	for range n {
		switch r.IntN(4) {
		case 0:
			buf = append(buf, '[')
			open++
		case 1:
			if open > 0 {
				buf = append(buf, ']')
				open--
			}
		default:
			buf = append(buf, "+-<>.,x \n"[r.IntN(9)])
		}
	}
	for ; open > 0; open-- {
		buf = append(buf, ']')
	}
	return buf
}

func TestBuildProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		src := randomProgram(r, r.IntN(300))
		index, err := Build(src, nil)
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}

		if n := bytes.Count(src, []byte("[")); n != index.Len() {
			t.Fatalf("%s: %d opening brackets, %d nodes", src, n, index.Len())
		}

		seen := make(map[NodeID]bool)
		for id, depth := range index.Walk() {
			if seen[id] {
				t.Fatalf("%s: node %d visited twice", src, id)
			}
			seen[id] = true
			node := index.Node(id)
			if node.Begin >= node.End {
				t.Fatalf("%s: node %d %+v", src, id, node)
			}
			if src[node.Begin] != '[' || src[node.End] != ']' {
				t.Fatalf("%s: node %d %+v", src, id, node)
			}
			if index.Depth(id) != depth {
				t.Fatalf("%s: depth mismatch for %d", src, id)
			}
			if node.Parent != None {
				parent := index.Node(node.Parent)
				if parent.Begin >= node.Begin || parent.End <= node.End {
					t.Fatalf("%s: node %d not inside parent", src, id)
				}
			}
			if node.Next != None && index.Node(node.Next).Begin <= node.End {
				t.Fatalf("%s: sibling of %d overlaps", src, id)
			}
		}
		if len(seen) != index.Len() {
			t.Fatalf("%s: walked %d of %d nodes", src, len(seen), index.Len())
		}
	}
}

func TestDump(t *testing.T) {
	index := mustBuild(t, "[[]][]")
	buf := new(bytes.Buffer)
	if err := index.Dump(buf); err != nil {
		t.Fatal(err)
	}
	want := "#0 [0, 3]\n  #1 [1, 2]\n#2 [4, 5]\n"
	if buf.String() != want {
		t.Fatalf("got %q", buf.String())
	}
}
