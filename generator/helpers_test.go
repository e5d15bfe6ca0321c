package generator

import (
	"testing"
	"time"

	"github.com/n0rdy/mockdata/refdata"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestGenerator(t *testing.T, seed uint64, opts ...Option) *Generator {
	t.Helper()

	ds, err := refdata.DefaultDataset()
	require.NoError(t, err)

	rnd := NewRandom(seed)
	store := refdata.NewMemoryStore(ds, refdata.WithPicker(rnd))

	base := []Option{WithRandom(rnd), WithClock(func() time.Time { return fixedNow })}
	return New(store, append(base, opts...)...)
}

func namePool(t *testing.T, gender refdata.Gender, maxRank int) map[string]bool {
	t.Helper()

	ds, err := refdata.DefaultDataset()
	require.NoError(t, err)

	pool := make(map[string]bool)
	for _, fn := range ds.FirstNames {
		if fn.Gender == gender && fn.Rank <= maxRank {
			pool[fn.Name] = true
		}
	}
	return pool
}
