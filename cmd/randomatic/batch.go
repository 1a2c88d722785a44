package main

import (
	"context"
	"sync"

	"github.com/FGasper/randomatic"
	"github.com/puzpuzpuz/xsync/v4"
)

// tally counts generated characters across workers.
type tally struct {
	counts *xsync.Map[rune, *xsync.Counter]
}

func newTally() *tally {
	return &tally{counts: xsync.NewMap[rune, *xsync.Counter]()}
}

func (t *tally) add(s string) {
	for _, r := range s {
		c, ok := t.counts.Load(r)
		if !ok {
			c, _ = t.counts.LoadOrStore(r, xsync.NewCounter())
		}
		c.Inc()
	}
}

// generateBatch produces count strings for req using a fixed pool of
// workers. Results keep their index order. t may be nil.
func generateBatch(
	ctx context.Context,
	gen *randomatic.Generator,
	req randomatic.Request,
	count, workers int,
	t *tally,
) ([]string, error) {
	results := make([]string, count)
	jobs := make(chan int)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for range workers {
		wg.Go(
			func() {
				for i := range jobs {
					s, err := gen.Generate(req)
					if err != nil {
						errOnce.Do(func() { firstErr = err })
						continue
					}
					if t != nil {
						t.add(s)
					}
					results[i] = s
				}
			},
		)
	}

feed:
	for i := range count {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
