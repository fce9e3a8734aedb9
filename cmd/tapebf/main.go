package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/tapebf/cmds"
	"github.com/reusee/tapebf/configs"
	"github.com/reusee/tapebf/modes"
	"github.com/reusee/tapebf/programs"
)

type action func(ctx context.Context, scope dscope.Scope) error

var todo action

func init() {
	cmds.Define("run", cmds.Func(func(location string) {
		todo = func(ctx context.Context, scope dscope.Scope) error {
			var err error
			scope.Call(func(run programs.Run) {
				err = run(ctx, location)
			})
			return err
		}
	}).Args("<path|-|url>").Desc("execute a program"))

	cmds.Define("compile", cmds.Func(func(input string, output string) {
		todo = func(ctx context.Context, scope dscope.Scope) error {
			var err error
			scope.Call(func(compile programs.Compile) {
				err = compile(ctx, input, output)
			})
			return err
		}
	}).Args("<input> <output|->").Desc("translate a program to the configured target"))

	cmds.Define("loops", cmds.Func(func(location string) {
		todo = func(ctx context.Context, scope dscope.Scope) error {
			var err error
			scope.Call(func(dump programs.DumpLoops) {
				err = dump(ctx, location)
			})
			return err
		}
	}).Args("<path|-|url>").Desc("print the loop structure of a program"))
}

func main() {
	cmds.Execute(os.Args[1:])
	if todo == nil {
		cmds.PrintUsage()
		os.Exit(1)
	}

	scope := dscope.New(
		new(programs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(loader configs.Loader) {
		if err := loader.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
			os.Exit(1)
		}
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := todo(ctx, scope); err != nil {
		fmt.Fprint(os.Stderr, errorText(err))
		cancel()
		os.Exit(1)
	}
}

func errorText(err error) string {
	text := err.Error()
	if len(text) > 0 && text[len(text)-1] != '\n' {
		text += "\n"
	}
	return text
}
