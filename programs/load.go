package programs

import (
	"context"

	"github.com/reusee/tapebf/bfconfigs"
	"github.com/reusee/tapebf/loops"
	"github.com/reusee/tapebf/sources"
)

// Parse loads a program and builds its loop index. Malformed programs are reported
// with the offending position.
type Parse func(ctx context.Context, location string) (*sources.Source, *loops.Index, error)

func (Module) Parse(
	load sources.Load,
	maxDepth bfconfigs.MaxDepth,
) Parse {
	return func(ctx context.Context, location string) (*sources.Source, *loops.Index, error) {
		src, err := load(ctx, location)
		if err != nil {
			return nil, nil, err
		}
		index, err := loops.Build(src.Content, &loops.Options{
			MaxDepth: int(maxDepth),
		})
		if err != nil {
			return nil, nil, src.Annotate(err)
		}
		return src, index, nil
	}
}
