package sources

import (
	"errors"
	"fmt"
	"strings"
)

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:%d:%d: %s\n", p.Pos.Source.Name, p.Pos.Line, p.Pos.Column, p.Err.Error())

	line := p.Pos.Source.Line(p.Pos.Line)
	if line == nil {
		return sb.String()
	}
	sb.Write(line)
	sb.WriteString("\n")
	for i, c := range line {
		if i >= p.Pos.Column-1 {
			break
		}
		if c == '\t' {
			sb.WriteByte('\t')
		} else if c < 0x80 || c >= 0xc0 {
			// one column per character, continuation bytes take none
			sb.WriteByte(' ')
		}
	}
	sb.WriteString("^\n")

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

// Offsetter is implemented by errors that know the byte offset they refer to.
type Offsetter interface {
	ErrorOffset() int
}

// Annotate wraps err with the source position it reports, if any.
func (s *Source) Annotate(err error) error {
	if err == nil {
		return nil
	}
	var pe PosError
	if errors.As(err, &pe) {
		return err
	}
	var o Offsetter
	if !errors.As(err, &o) {
		return err
	}
	return PosError{
		Err: err,
		Pos: s.Pos(o.ErrorOffset()),
	}
}
