// Package translate turns a program into equivalent source code of a block-structured host language.
package translate

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/reusee/tapebf/tape"
)

type Target string

const (
	TargetC        Target = "c"
	TargetStarlark Target = "starlark"
)

var (
	ErrUnbalanced    = errors.New("unbalanced brackets")
	ErrUnknownTarget = errors.New("unknown target")
)

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
	Target   Target
	TapeSize int
	// SourceMap receives the line to instruction mapping of a Starlark translation
	SourceMap *SourceMap
}

// Translate writes the whole translation to w, or nothing if src is malformed.
func Translate(w io.Writer, src []byte, options *Options) error {
	target := TargetC
	size := tape.DefaultSize
	var sourceMap *SourceMap
	if options != nil {
		sourceMap = options.SourceMap
		if options.Target != "" {
			target = options.Target
		}
		if options.TapeSize > 0 {
			size = options.TapeSize
		}
	}

	buf := new(bytes.Buffer)
	var err error
	switch target {
	case TargetC:
		err = translateC(buf, src, size)
	case TargetStarlark:
		err = translateStarlark(buf, src, size, sourceMap)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownTarget, target)
	}
	if err != nil {
		return err
	}

	_, err = buf.WriteTo(w)
	return err
}

// balance checks bracket nesting with a depth counter only.
func balance(src []byte) error {
	depth := 0
	lastOpen := -1
	for pos, c := range src {
		switch c {
		case '[':
			if depth == 0 {
				lastOpen = pos
			}
			depth++
		case ']':
			if depth == 0 {
				return &Error{Err: ErrUnbalanced, Offset: pos}
			}
			depth--
		}
	}
	if depth > 0 {
		return &Error{Err: ErrUnbalanced, Offset: lastOpen}
	}
	return nil
}
