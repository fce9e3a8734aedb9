package loops

import (
	"errors"
	"fmt"
)

var (
	ErrUnmatchedOpen  = errors.New("unmatched '['")
	ErrUnmatchedClose = errors.New("unmatched ']'")
	ErrTooDeep        = errors.New("loops nested too deep")
)

// Error is a malformed program error at a byte offset of the source.
type Error struct {
	Err    error
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err, e.Offset)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) ErrorOffset() int {
	return e.Offset
}

type Options struct {
	// MaxDepth limits nesting; 0 means unbounded
	MaxDepth int
}

// Build scans src once. Bytes other than '[' and ']' are ignored.
func Build(src []byte, options *Options) (*Index, error) {
	maxDepth := 0
	if options != nil {
		maxDepth = options.MaxDepth
	}

	index := &Index{
		first: None,
		marks: make([]NodeID, len(src)),
	}
	for pos := range index.marks {
		index.marks[pos] = None
	}

	// open holds the unclosed loops, innermost last.
	// last[d] is the most recent loop at depth d under the current parent.
	var open []NodeID
	last := []NodeID{None}

	for pos, c := range src {
		switch c {

		case '[':
			depth := len(open)
			if maxDepth > 0 && depth >= maxDepth {
				return nil, &Error{
					Err:    fmt.Errorf("%w: limit %d", ErrTooDeep, maxDepth),
					Offset: pos,
				}
			}
			id := NodeID(len(index.nodes))
			parent := None
			if depth > 0 {
				parent = open[depth-1]
			}
			index.nodes = append(index.nodes, Node{
				Begin:  pos,
				End:    -1,
				Child:  None,
				Next:   None,
				Parent: parent,
			})
			switch {
			case last[depth] != None:
				index.nodes[last[depth]].Next = id
			case parent != None:
				index.nodes[parent].Child = id
			default:
				index.first = id
			}
			last[depth] = id
			index.marks[pos] = id
			open = append(open, id)
			last = append(last[:depth+1], None)

		case ']':
			if len(open) == 0 {
				return nil, &Error{
					Err:    ErrUnmatchedClose,
					Offset: pos,
				}
			}
			id := open[len(open)-1]
			open = open[:len(open)-1]
			index.nodes[id].End = pos
			index.marks[pos] = id

		}
	}

	if len(open) > 0 {
		return nil, &Error{
			Err:    ErrUnmatchedOpen,
			Offset: index.nodes[open[len(open)-1]].Begin,
		}
	}

	return index, nil
}
