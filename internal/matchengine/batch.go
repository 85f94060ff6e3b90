package matchengine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxConcurrentQueries bounds how many documents ProcessBatch runs
// through the pipeline at once when concurrency <= 0 is passed in.
const DefaultMaxConcurrentQueries = 8

// ProcessBatch runs Process over every text concurrently, bounded to at
// most concurrency goroutines at a time, and returns one FrequencyMap per
// input text in the same order. Process never fails, so the only error
// ProcessBatch can return comes from ctx being cancelled between
// scheduling of individual documents.
func (e *Engine) ProcessBatch(ctx context.Context, texts []string, concurrency int) ([]FrequencyMap, error) {
	if concurrency <= 0 {
		concurrency = DefaultMaxConcurrentQueries
	}

	results := make([]FrequencyMap, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.Process(text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
