package experiment

import (
	"context"
	"sync"

	"github.com/san-kum/sortlab/internal/algorithms"
	"github.com/san-kum/sortlab/internal/trace"
)

// Compare runs every named algorithm over the same initial array, one
// goroutine each. Instrumentors work on their own copies, so initial is only
// ever read. Results come back in the order of names.
func Compare(ctx context.Context, initial []trace.Item, names []algorithms.Name) ([]*Result, error) {
	if len(names) == 0 {
		names = algorithms.Names()
	}
	results := make([]*Result, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(idx int, name algorithms.Name) {
			defer wg.Done()
			results[idx], errs[idx] = RunOn(ctx, name, initial)
		}(i, name)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
