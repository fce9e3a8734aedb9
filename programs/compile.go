package programs

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/reusee/tapebf/bfconfigs"
	"github.com/reusee/tapebf/logs"
	"github.com/reusee/tapebf/sources"
	"github.com/reusee/tapebf/translate"
)

// Compile translates the program at input and writes it to the output path, or to
// Output when the path is "-". The output file is untouched when translation fails.
type Compile func(ctx context.Context, input string, output string) error

func (Module) Compile(
	load sources.Load,
	newSpan logs.NewSpan,
	logger logs.Logger,
	target bfconfigs.Target,
	size bfconfigs.TapeSize,
	stdout Output,
) Compile {
	return func(ctx context.Context, input string, output string) (err error) {
		ctx, _ = newSpan(ctx, "compile "+input)
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		src, err := load(ctx, input)
		if err != nil {
			return err
		}

		buf := new(bytes.Buffer)
		if err := translate.Translate(buf, src.Content, &translate.Options{
			Target:   translate.Target(target),
			TapeSize: int(size),
		}); err != nil {
			return src.Annotate(err)
		}
		logger.DebugContext(ctx, "translated",
			"target", target,
			"bytes", buf.Len(),
		)

		if output == sources.StdinName {
			if _, err := buf.WriteTo(stdout); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		}
		if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("unable to write file `%s`: %w", output, err)
		}
		return nil
	}
}
