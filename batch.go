package nullz

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ApplyAll applies p to every input with at most limit applications running
// at once and returns the results in input order. A limit below one means no
// limit.
//
// ApplyAll stops dispatching once ctx is done and returns ctx.Err(); inputs
// already being applied run to completion since a step cannot be interrupted.
// Concurrent application is only as safe as the wrapped actions: actions that
// mutate captured state must synchronize it themselves.
func ApplyAll[In, Out any](ctx context.Context, p Pipeline[In, Out], inputs []In, limit int) ([]Out, error) {
	if p.Len() == 0 {
		return nil, ErrEmptyPipeline
	}

	results := make([]Out, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	dispatched := 0
	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		dispatched++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.Apply(input)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if dispatched < len(inputs) {
		return nil, ctx.Err()
	}
	return results, nil
}
