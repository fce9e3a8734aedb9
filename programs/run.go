package programs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/tapebf/bfconfigs"
	"github.com/reusee/tapebf/bfvm"
	"github.com/reusee/tapebf/debugs"
	"github.com/reusee/tapebf/logs"
	"github.com/reusee/tapebf/tape"
	"github.com/reusee/tapebf/translate"
)

var ErrDebugUnsupported = errors.New("breakpoints need the native backend")

type Run func(ctx context.Context, location string) error

func (Module) Run(
	parse Parse,
	newSpan logs.NewSpan,
	logger logs.Logger,
	size bfconfigs.TapeSize,
	eof bfconfigs.EOF,
	backend bfconfigs.Backend,
	debug bfconfigs.Debug,
	tap debugs.Tap,
	input Input,
	output Output,
) Run {
	return func(ctx context.Context, location string) (err error) {
		ctx, _ = newSpan(ctx, "run "+location)
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		policy, err := tape.ParseEOFPolicy(string(eof))
		if err != nil {
			return err
		}
		if debug && backend != bfconfigs.BackendNative {
			return fmt.Errorf("%w: %s", ErrDebugUnsupported, backend)
		}

		// the tap shell reads the same stdin, so no read-ahead while debugging
		var in io.Reader = input
		if !debug {
			in = bufio.NewReader(input)
		}

		src, index, err := parse(ctx, location)
		if err != nil {
			return err
		}
		logger.DebugContext(ctx, "program parsed",
			"loops", index.Len(),
			"backend", backend,
		)

		out, flush := bufferOutput(output)
		defer func() {
			if e := flush(); e != nil && err == nil {
				err = fmt.Errorf("flush output: %w", e)
			}
		}()

		switch backend {

		case bfconfigs.BackendNative:
			t, err := tape.New(int(size))
			if err != nil {
				return err
			}
			vm := bfvm.New(src.Content, index, t, &bfvm.Options{
				Input:       in,
				Output:      out,
				EOF:         policy,
				Breakpoints: bool(debug),
			})
			if err := vm.RunContext(ctx, func(vm *bfvm.VM) error {
				if err := flush(); err != nil {
					return err
				}
				pos := src.Pos(vm.Cursor.IP - 1)
				tap(ctx, fmt.Sprintf("breakpoint at %s:%d:%d", src.Name, pos.Line, pos.Column), debugs.VMGlobals(vm))
				return nil
			}); err != nil {
				return src.Annotate(err)
			}
			logger.DebugContext(ctx, "program halted",
				"steps", vm.Steps,
			)

		case bfconfigs.BackendStarlark:
			code := new(strings.Builder)
			var sourceMap translate.SourceMap
			if err := translate.Translate(code, src.Content, &translate.Options{
				Target:    translate.TargetStarlark,
				TapeSize:  int(size),
				SourceMap: &sourceMap,
			}); err != nil {
				return src.Annotate(err)
			}
			if err := translate.RunStarlark(ctx, src.Name, []byte(code.String()), &translate.RunOptions{
				Input:     in,
				Output:    out,
				EOF:       policy,
				TapeSize:  int(size),
				SourceMap: sourceMap,
			}); err != nil {
				return src.Annotate(err)
			}

		default:
			return fmt.Errorf("unknown backend: %s", backend)
		}

		return nil
	}
}
