package analytics

import (
	"cmp"
	"math"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// grouped accumulates one value per key and remembers first-seen key order,
// which is what gives equal-count rows their stable position.
type grouped[V any] struct {
	entries *orderedmap.OrderedMap[string, *V]
}

func newGrouped[V any]() *grouped[V] {
	return &grouped[V]{entries: orderedmap.New[string, *V]()}
}

// at returns the accumulator for key, creating a zero value on first use.
func (g *grouped[V]) at(key string) *V {
	if v, ok := g.entries.Get(key); ok {
		return v
	}
	v := new(V)
	g.entries.Set(key, v)
	return v
}

func (g *grouped[V]) each(fn func(key string, v *V)) {
	for pair := g.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

func (g *grouped[V]) size() int {
	return g.entries.Len()
}

// sortDesc sorts rows by metric, highest first, keeping input order for ties.
func sortDesc[T any](rows []T, metric func(T) int) {
	slices.SortStableFunc(rows, func(a, b T) int {
		return cmp.Compare(metric(b), metric(a))
	})
}

func topN[T any](rows []T, n int) []T {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}

// percent is round(100 * part / whole) with half-up rounding; 0 when whole is 0.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return roundHalfUp(100 * float64(part) / float64(whole))
}

// roundHalfUp rounds .5 toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
