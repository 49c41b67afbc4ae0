package trace

import (
	"math/rand"

	"github.com/google/uuid"
)

const (
	DefaultMin = 10
	DefaultMax = 100
)

// NewArray returns size items with values drawn uniformly from [min, max].
// Identities are drawn from rng as well, so a seeded source reproduces the
// array exactly. A negative size yields an empty array and a reversed range
// is swapped; generation never fails.
func NewArray(rng *rand.Rand, size, min, max int) []Item {
	if size < 0 {
		size = 0
	}
	if min > max {
		min, max = max, min
	}
	items := make([]Item, size)
	for i := range items {
		items[i] = Item{
			ID:    newID(rng),
			Value: min + rng.Intn(max-min+1),
		}
	}
	return items
}

// FromValues wraps plain values into items with fresh identities. Handy for
// fixed inputs from the CLI and tests.
func FromValues(rng *rand.Rand, values ...int) []Item {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = Item{ID: newID(rng), Value: v}
	}
	return items
}

func newID(rng *rand.Rand) uuid.UUID {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.New()
	}
	return id
}
