package translate

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/reusee/tapebf/tape"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

type RunOptions struct {
	Input    io.Reader
	Output   io.Writer
	EOF      tape.EOFPolicy
	TapeSize int
	// SourceMap, when set, turns failures into *Error at the failing instruction
	SourceMap SourceMap
}

// RunStarlark executes code produced for TargetStarlark until it ends or ctx is done.
func RunStarlark(ctx context.Context, name string, code []byte, options *RunOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	size := tape.DefaultSize
	var input io.ByteReader = bufio.NewReader(eofReader{})
	output := io.Discard
	var policy tape.EOFPolicy
	var sourceMap SourceMap
	if options != nil {
		sourceMap = options.SourceMap
		if options.TapeSize > 0 {
			size = options.TapeSize
		}
		if options.Input != nil {
			if br, ok := options.Input.(io.ByteReader); ok {
				input = br
			} else {
				input = bufio.NewReader(options.Input)
			}
		}
		if options.Output != nil {
			output = options.Output
		}
		policy = options.EOF
	}

	move := func(delta int) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
		return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var ptr int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &ptr); err != nil {
				return nil, err
			}
			next := ptr + delta
			if next < 0 || next >= size {
				return nil, &tape.BoundsError{
					Cursor: next,
					Len:    size,
				}
			}
			return starlark.MakeInt(next), nil
		}
	}

	var outBuf [1]byte
	predeclared := starlark.StringDict{
		"left":  starlark.NewBuiltin("left", move(-1)),
		"right": starlark.NewBuiltin("right", move(1)),

		"putchar": starlark.NewBuiltin("putchar", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var value int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &value); err != nil {
				return nil, err
			}
			outBuf[0] = byte(value)
			if _, err := output.Write(outBuf[:]); err != nil {
				return nil, fmt.Errorf("write output: %w", err)
			}
			return starlark.None, nil
		}),

		"getchar": starlark.NewBuiltin("getchar", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var current int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &current); err != nil {
				return nil, err
			}
			b, err := input.ReadByte()
			if errors.Is(err, io.EOF) {
				return starlark.MakeInt(int(policy.Apply(byte(current)))), nil
			}
			if err != nil {
				return nil, fmt.Errorf("read input: %w", err)
			}
			return starlark.MakeInt(int(b)), nil
		}),
	}

	thread := &starlark.Thread{
		Name: name,
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(ctx.Err().Error())
	})
	defer stop()

	_, err := starlark.ExecFileOptions(fileOptions, thread, name, code, predeclared)
	if err != nil && ctx.Err() != nil {
		return fmt.Errorf("%s: %w", name, ctx.Err())
	}
	if err != nil && sourceMap != nil {
		if offset, ok := failedOffset(err, name, sourceMap); ok {
			return &Error{
				Err:    err,
				Offset: offset,
			}
		}
	}
	return err
}

// failedOffset finds the innermost frame of the translated file in an evaluation error.
func failedOffset(err error, name string, sourceMap SourceMap) (int, bool) {
	var evalErr *starlark.EvalError
	if !errors.As(err, &evalErr) {
		return 0, false
	}
	for i := len(evalErr.CallStack) - 1; i >= 0; i-- {
		pos := evalErr.CallStack[i].Pos
		if pos.Filename() != name {
			continue
		}
		return sourceMap.Offset(int(pos.Line))
	}
	return 0, false
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) {
	return 0, io.EOF
}
