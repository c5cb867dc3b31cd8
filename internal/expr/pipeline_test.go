package expr

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seqproc/seqproc/internal/runner"
)

// This is the composition cmd/seqproc ships: a batch of lines evaluated
// through the worker pool.
func TestEvalStringBatchThroughRunner(t *testing.T) {
	lines := []string{
		"1+2",
		"2*3+4",
		"(2+3)*4",
		"10/3",
		"-(1+1)",
		"1/0",
		"nope",
		"7-2-1",
	}

	results := runner.Run(context.Background(), lines, 4, EvalString)
	require.Len(t, results, len(lines))

	require.NoError(t, results[0].Err)
	require.Equal(t, int64(3), results[0].Value)
	require.Equal(t, int64(10), results[1].Value)
	require.Equal(t, int64(20), results[2].Value)
	require.Equal(t, int64(3), results[3].Value)
	require.Equal(t, int64(-2), results[4].Value)
	require.ErrorIs(t, results[5].Err, ErrDivideByZero)
	require.Error(t, results[6].Err)
	require.NoError(t, results[7].Err)
	require.Equal(t, int64(4), results[7].Value)

	for i, res := range results {
		require.Equal(t, i, res.Index)
		require.Equal(t, lines[i], res.Line)
	}
}

// A freshly built grammar has cold deferred-construction caches; hitting it
// from many goroutines at once must be clean under the race detector.
func TestFreshGrammarConcurrentParse(t *testing.T) {
	g := newGrammar()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = g.ParseAll("(1+2)*3")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "goroutine %d", i)
	}
}
