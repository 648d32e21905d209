package output

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Process calls fn for every item with at most limit calls in flight,
// advancing a progress bar as items complete. A limit below one means no
// limit. The first error cancels the context handed to the remaining calls
// and is returned once all started calls have finished.
func Process[T any](parent context.Context, w *Writer, items []T, limit int, fn func(ctx context.Context, item T) error) error {
	bar := w.NewProgress(len(items))

	g, ctx := errgroup.WithContext(parent)
	if limit < 1 {
		limit = -1
	}
	g.SetLimit(limit)

	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, item); err != nil {
				return err
			}
			bar.Advance(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if err := parent.Err(); err != nil {
		return err
	}
	bar.Finish()
	return nil
}
