// Package runner processes batches of input lines through a parse/eval
// function with a bounded worker pool.
package runner

import (
	"context"
	"errors"
	"sync"
)

var errPending = errors.New("runner: line not processed")

// Result carries one processed line. Results keep input order regardless of
// which worker finished first.
type Result[T any] struct {
	Index int
	Line  string
	Value T
	Err   error
}

// Run feeds lines to fn across at most workers goroutines. A canceled context
// stops dispatch; lines never dispatched carry the context error.
func Run[T any](ctx context.Context, lines []string, workers int, fn func(string) (T, error)) []Result[T] {
	results := make([]Result[T], len(lines))
	for i := range results {
		results[i] = Result[T]{Index: i, Line: lines[i], Err: errPending}
	}

	if workers < 1 {
		workers = 1
	}
	if workers > len(lines) {
		workers = len(lines)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				v, err := fn(lines[i])
				results[i] = Result[T]{Index: i, Line: lines[i], Value: v, Err: err}
			}
		}()
	}

feed:
	for i := range lines {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for i := range results {
			if errors.Is(results[i].Err, errPending) {
				results[i].Err = err
			}
		}
	}
	return results
}
