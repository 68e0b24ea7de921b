package huge

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FillParallel fills a with values produced by gen(index), distributing
// pages across up to concurrency goroutines. Each page is filled by exactly
// one goroutine, so gen must be safe for concurrent use across different
// indices. gen cannot fail; the only error returned is the context's, when
// it is cancelled before a page starts. Pages already filled stay filled.
func FillParallel[T any](ctx context.Context, a *Array[T], concurrency int, gen func(index int64) T) error {
	if concurrency < 1 {
		concurrency = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for pageIdx, page := range a.pages {
		pageIdx, page := pageIdx, page
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			base := int64(pageIdx) * pageSize
			for i := range page {
				page[i] = gen(base + int64(i))
			}
			return nil
		})
	}
	return g.Wait()
}
