package debugs

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"slices"

	"github.com/reusee/tapebf/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// TapOutput receives the tap banner and print() output of the shell.
type TapOutput io.Writer

func (Module) TapOutput() TapOutput {
	return os.Stderr
}

// Tap shows globals and opens a starlark shell over them, returning when the shell reads EOF.
// Nothing is opened once ctx is done.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
	output TapOutput,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		if ctx.Err() != nil {
			return
		}

		names := slices.Sorted(maps.Keys(globals))
		logger.DebugContext(ctx, "tap", "what", what, "globals", names)

		mappings := make(starlark.StringDict, len(globals))
		for _, name := range names {
			mappings[name] = toStarlarkValue(globals[name])
		}
		writeBanner(output, what, names, globals, mappings)

		thread := &starlark.Thread{
			Name: what,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(output, msg)
			},
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
		}, thread, mappings)

		logger.DebugContext(ctx, "tap end", "what", what)
	}
}

func writeBanner(w io.Writer, what string, names []string, globals map[string]any, values starlark.StringDict) {
	fmt.Fprintf(w, "-- %s\n", what)
	for _, name := range names {
		if v := globals[name]; v != nil && reflect.TypeOf(v).Kind() == reflect.Func {
			fmt.Fprintf(w, "  %s()\n", name)
			continue
		}
		fmt.Fprintf(w, "  %s = %s\n", name, values[name].String())
	}
}
