// Package tape implements the fixed-size byte memory programs operate on.
package tape

import (
	"errors"
	"fmt"
)

const DefaultSize = 30000

var (
	ErrOutOfBounds = errors.New("tape cursor out of bounds")
	ErrInvalidSize = errors.New("invalid tape size")
)

// BoundsError reports a move that would leave [0, Len).
type BoundsError struct {
	Cursor int
	Len    int
}

func (b *BoundsError) Error() string {
	return fmt.Sprintf("%s: cursor %d, length %d", ErrOutOfBounds, b.Cursor, b.Len)
}

func (b *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// Tape is a zero-initialized cell array with a cursor. The cursor always stays in range:
// a move that would leave the tape fails and leaves the cursor where it was.
type Tape struct {
	cells  []byte
	cursor int
	high   int
}

func New(size int) (*Tape, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Tape{
		cells: make([]byte, size),
	}, nil
}

func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) Cursor() int {
	return t.cursor
}

func (t *Tape) Get() byte {
	return t.cells[t.cursor]
}

func (t *Tape) Set(b byte) {
	t.cells[t.cursor] = b
}

// Inc and Dec wrap modulo 256.
func (t *Tape) Inc() {
	t.cells[t.cursor]++
}

func (t *Tape) Dec() {
	t.cells[t.cursor]--
}

func (t *Tape) Move(delta int) error {
	next := t.cursor + delta
	if next < 0 || next >= len(t.cells) {
		return &BoundsError{
			Cursor: next,
			Len:    len(t.cells),
		}
	}
	t.cursor = next
	if next > t.high {
		t.high = next
	}
	return nil
}

func (t *Tape) Left() error {
	return t.Move(-1)
}

func (t *Tape) Right() error {
	return t.Move(1)
}

// Snapshot is a copy of the visited prefix of the tape.
type Snapshot struct {
	Cursor int
	Cells  []byte
}

func (t *Tape) Snapshot() Snapshot {
	return Snapshot{
		Cursor: t.cursor,
		Cells:  append([]byte(nil), t.cells[:t.high+1]...),
	}
}
