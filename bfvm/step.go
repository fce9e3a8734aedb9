// Package bfvm executes programs on a tape, resolving loop jumps through a prebuilt loop index.
package bfvm

import (
	"errors"
	"fmt"

	"github.com/reusee/tapebf/loops"
	"github.com/reusee/tapebf/tape"
)

// Cursor is the complete progress of a run: the next instruction, the tape
// cursor, and the innermost loop enclosing IP.
type Cursor struct {
	IP   int
	Cell int
	Loop loops.NodeID
}

type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	// OutcomeOutput asks the caller to emit the current cell
	OutcomeOutput
	// OutcomeInput asks the caller to read into the current cell
	OutcomeInput
	OutcomeBreakpoint
	OutcomeHalt
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeOutput:
		return "output"
	case OutcomeInput:
		return "input"
	case OutcomeBreakpoint:
		return "breakpoint"
	case OutcomeHalt:
		return "halt"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

var ErrIndexMismatch = errors.New("loop index does not match source")

// Error is a fatal runtime error at the instruction at Offset.
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

// Step executes the instruction at cur.IP and returns the cursor after it.
// Only the tape is mutated. I/O is left to the caller, signaled by the outcome;
// the cell to read or write is the one under the returned cursor.
// On error the returned cursor equals cur.
func Step(src []byte, index *loops.Index, t *tape.Tape, cur Cursor, breakpoints bool) (Cursor, Outcome, error) {
	if cur.IP >= len(src) {
		return cur, OutcomeHalt, nil
	}

	next := cur
	next.IP++
	outcome := OutcomeContinue

	switch src[cur.IP] {

	case '>':
		if err := t.Right(); err != nil {
			return cur, outcome, &Error{Err: err, Offset: cur.IP}
		}

	case '<':
		if err := t.Left(); err != nil {
			return cur, outcome, &Error{Err: err, Offset: cur.IP}
		}

	case '+':
		t.Inc()

	case '-':
		t.Dec()

	case '.':
		outcome = OutcomeOutput

	case ',':
		outcome = OutcomeInput

	case '[':
		id, ok := index.At(cur.IP)
		if !ok || index.Node(id).Parent != cur.Loop {
			return cur, outcome, &Error{Err: ErrIndexMismatch, Offset: cur.IP}
		}
		if t.Get() == 0 {
			next.IP = index.Node(id).End + 1
		} else {
			next.Loop = id
		}

	case ']':
		if cur.Loop == loops.None || index.Node(cur.Loop).End != cur.IP {
			return cur, outcome, &Error{Err: ErrIndexMismatch, Offset: cur.IP}
		}
		node := index.Node(cur.Loop)
		if t.Get() != 0 {
			next.IP = node.Begin + 1
		} else {
			next.Loop = node.Parent
		}

	case '#':
		if breakpoints {
			outcome = OutcomeBreakpoint
		}

	}

	next.Cell = t.Cursor()
	return next, outcome, nil
}
