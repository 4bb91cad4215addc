package dijkstra

import (
	"context"
	"runtime"
	"sync"

	"github.com/katalvlaran/lvpath/core"
)

// SolveAll runs Solve once per source, concurrently, against the same graph.
//
// results[i] belongs to sources[i]. Each solve allocates its own tables, so
// the only shared state is the read-only graph. At most GOMAXPROCS solves run
// at a time. The first failure cancels the remaining solves and is returned;
// ctx cancellation is honored the same way. Any WithContext option in opts
// is superseded by ctx.
func SolveAll(ctx context.Context, g *core.Graph, sources []int, opts ...Option) ([]*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]*Result, len(sources))
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	runOpts := append(append([]Option(nil), opts...), WithContext(ctx))
	for i, src := range sources {
		wg.Add(1)
		go func(i, src int) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				fail(ctx.Err())
				return
			}
			defer func() { <-sem }()

			res, err := Solve(g, src, runOpts...)
			if err != nil {
				fail(err)
				return
			}
			results[i] = res
		}(i, src)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}
