package programs

import (
	"context"
)

// DumpLoops prints the loop forest of a program.
type DumpLoops func(ctx context.Context, location string) error

func (Module) DumpLoops(
	parse Parse,
	output Output,
) DumpLoops {
	return func(ctx context.Context, location string) error {
		_, index, err := parse(ctx, location)
		if err != nil {
			return err
		}
		out, flush := bufferOutput(output)
		if err := index.Dump(out); err != nil {
			return err
		}
		return flush()
	}
}
