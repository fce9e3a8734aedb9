package bfvm

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/tapebf/loops"
	"github.com/reusee/tapebf/tape"
)

type Options struct {
	Input  io.Reader // nil means no input: every read hits EOF
	Output io.Writer // nil discards output
	EOF    tape.EOFPolicy
	// Breakpoints makes '#' stop the run with InterruptBreakpoint
	Breakpoints bool
}

type VM struct {
	Source []byte
	Index  *loops.Index
	Tape   *tape.Tape
	Cursor Cursor
	Steps  int64

	input       io.ByteReader
	output      io.Writer
	eof         tape.EOFPolicy
	breakpoints bool
	outBuf      [1]byte
}

func New(src []byte, index *loops.Index, t *tape.Tape, options *Options) *VM {
	v := &VM{
		Source: src,
		Index:  index,
		Tape:   t,
		Cursor: Cursor{
			IP:   0,
			Cell: t.Cursor(),
			Loop: loops.None,
		},
		output: io.Discard,
	}
	if options != nil {
		if options.Input != nil {
			if br, ok := options.Input.(io.ByteReader); ok {
				v.input = br
			} else {
				v.input = &byteReader{r: options.Input}
			}
		}
		if options.Output != nil {
			v.output = options.Output
		}
		v.eof = options.EOF
		v.breakpoints = options.Breakpoints
	}
	if v.input == nil {
		v.input = eofReader{}
	}
	return v
}

// Step executes one instruction and performs its I/O.
func (v *VM) Step() (Outcome, error) {
	next, outcome, err := Step(v.Source, v.Index, v.Tape, v.Cursor, v.breakpoints)
	if err != nil {
		return outcome, err
	}

	switch outcome {
	case OutcomeHalt:
		return outcome, nil
	case OutcomeOutput:
		v.outBuf[0] = v.Tape.Get()
		if _, err := v.output.Write(v.outBuf[:]); err != nil {
			return outcome, &Error{Err: fmt.Errorf("write output: %w", err), Offset: v.Cursor.IP}
		}
	case OutcomeInput:
		if err := v.Tape.Read(v.input, v.eof); err != nil {
			return outcome, &Error{Err: err, Offset: v.Cursor.IP}
		}
	}

	v.Cursor = next
	v.Steps++
	return outcome, nil
}

// Run executes until the end of the source. Fatal errors are yielded once and end the run.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	for {
		outcome, err := v.Step()
		if err != nil {
			yield(nil, err)
			return
		}
		switch outcome {
		case OutcomeHalt:
			return
		case OutcomeBreakpoint:
			if !yield(InterruptBreakpoint, nil) {
				return
			}
		}
	}
}

const pollInterval = 4096

// RunContext is Run with cancellation, calling onBreakpoint at each breakpoint.
func (v *VM) RunContext(ctx context.Context, onBreakpoint func(*VM) error) error {
	for {
		if v.Steps%pollInterval == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		outcome, err := v.Step()
		if err != nil {
			return err
		}
		switch outcome {
		case OutcomeHalt:
			return nil
		case OutcomeBreakpoint:
			if onBreakpoint != nil {
				if err := onBreakpoint(v); err != nil {
					return err
				}
			}
		}
	}
}

// byteReader reads one byte per call and never reads ahead.
// Wrap the input in a bufio.Reader when nothing else shares it.
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	for {
		n, err := b.r.Read(b.buf[:])
		if n == 1 {
			return b.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

type eofReader struct{}

func (eofReader) ReadByte() (byte, error) {
	return 0, io.EOF
}
