package greeting

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateCountsSequentialVisits(t *testing.T) {
	state := &State{}

	require.Equal(t, uint64(0), state.Visits(), "fresh state starts at zero")

	for i := uint64(1); i <= 10; i++ {
		require.Equal(t, i, state.NextVisit())
	}

	require.Equal(t, uint64(10), state.Visits())
}

func TestStateConcurrentVisitsAreDistinct(t *testing.T) {
	const visitors = 100

	state := &State{}
	results := make(chan uint64, visitors)

	var wg sync.WaitGroup
	for i := 0; i < visitors; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- state.NextVisit()
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[uint64]bool, visitors)
	for count := range results {
		require.False(t, seen[count], "visit number %d reported twice", count)
		require.GreaterOrEqual(t, count, uint64(1))
		require.LessOrEqual(t, count, uint64(visitors))
		seen[count] = true
	}

	require.Len(t, seen, visitors, "every visitor gets a distinct number, no gaps")
	require.Equal(t, uint64(visitors), state.Visits())
}
