package tape

import (
	"errors"
	"fmt"
	"io"
)

// EOFPolicy decides what an input instruction stores once input is exhausted.
type EOFPolicy uint8

const (
	EOFZero EOFPolicy = iota
	EOFKeep
	EOFMax
)

var ErrInvalidEOFPolicy = errors.New("invalid eof policy")

func ParseEOFPolicy(str string) (EOFPolicy, error) {
	switch str {
	case "", "zero":
		return EOFZero, nil
	case "keep":
		return EOFKeep, nil
	case "max":
		return EOFMax, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidEOFPolicy, str)
}

func (e EOFPolicy) String() string {
	switch e {
	case EOFZero:
		return "zero"
	case EOFKeep:
		return "keep"
	case EOFMax:
		return "max"
	}
	return fmt.Sprintf("EOFPolicy(%d)", uint8(e))
}

// Apply returns the value stored on exhausted input, given the current cell value.
func (e EOFPolicy) Apply(current byte) byte {
	switch e {
	case EOFKeep:
		return current
	case EOFMax:
		return 0xff
	}
	return 0
}

// Read stores one byte from r into the current cell, applying policy on io.EOF.
func (t *Tape) Read(r io.ByteReader, policy EOFPolicy) error {
	b, err := r.ReadByte()
	if errors.Is(err, io.EOF) {
		t.Set(policy.Apply(t.Get()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	t.Set(b)
	return nil
}
