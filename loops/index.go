// Package loops builds the loop index of a program: one node per matched
// bracket pair, linked by parent, first child and next sibling.
package loops

import "iter"

// NodeID addresses a node in an Index. Nodes are numbered in the source order of their opening brackets.
type NodeID int32

const None NodeID = -1

type Node struct {
	Begin  int
	End    int
	Child  NodeID
	Next   NodeID
	Parent NodeID
}

// Index is immutable after Build returns.
type Index struct {
	nodes []Node
	first NodeID
	// marks maps a bracket position to its node, None elsewhere
	marks []NodeID
}

func (i *Index) Len() int {
	return len(i.nodes)
}

func (i *Index) Node(id NodeID) Node {
	return i.nodes[id]
}

// At returns the node whose opening or closing bracket sits at pos.
func (i *Index) At(pos int) (NodeID, bool) {
	if pos < 0 || pos >= len(i.marks) {
		return None, false
	}
	id := i.marks[pos]
	return id, id != None
}

// First is the first top-level loop, or None.
func (i *Index) First() NodeID {
	return i.first
}

func (i *Index) siblings(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for ; id != None; id = i.nodes[id].Next {
			if !yield(id) {
				return
			}
		}
	}
}

// Roots iterates top-level loops in source order.
func (i *Index) Roots() iter.Seq[NodeID] {
	return i.siblings(i.first)
}

// Children iterates the loops directly inside id in source order.
func (i *Index) Children(id NodeID) iter.Seq[NodeID] {
	return i.siblings(i.nodes[id].Child)
}

// Walk visits every node depth-first in source order.
func (i *Index) Walk() iter.Seq2[NodeID, int] {
	return func(yield func(NodeID, int) bool) {
		var walk func(id NodeID, depth int) bool
		walk = func(id NodeID, depth int) bool {
			for ; id != None; id = i.nodes[id].Next {
				if !yield(id, depth) {
					return false
				}
				if !walk(i.nodes[id].Child, depth+1) {
					return false
				}
			}
			return true
		}
		walk(i.first, 0)
	}
}

// Depth is 0 for top-level loops.
func (i *Index) Depth(id NodeID) int {
	depth := 0
	for p := i.nodes[id].Parent; p != None; p = i.nodes[p].Parent {
		depth++
	}
	return depth
}
