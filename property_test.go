package segtree

import (
	"testing"

	rng "github.com/leesper/go_rng"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// randomFloats draws n integral float64 values, so that sums are exact
// regardless of evaluation order.
func randomFloats(g *rng.UniformGenerator, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(g.Int64n(2001) - 1000)
	}
	return values
}

func randomRange(g *rng.UniformGenerator, n int) (int, int) {
	l := int(g.Int64n(int64(n)))
	r := l + int(g.Int64n(int64(n-l)))
	return l, r
}

func TestBuildAggregatesWholeSequence(t *testing.T) {
	g := rng.NewUniformGenerator(0xDEADBEEF)
	for n := 1; n <= 100; n++ {
		values := randomFloats(g, n)
		sumTree, err := NewSum(values)
		require.NoError(t, err)
		minTree, err := NewMin(values)
		require.NoError(t, err)

		s, err := sumTree.Query(0, n-1)
		require.NoError(t, err)
		require.Equal(t, floats.Sum(values), s, "n=%d", n)
		m, err := minTree.Query(0, n-1)
		require.NoError(t, err)
		require.Equal(t, floats.Min(values), m, "n=%d", n)

		require.NoError(t, sumTree.Check())
		require.NoError(t, minTree.Check())
		require.Equal(t, values, sumTree.Values())
	}
}

func TestRandomQueriesMatchOracle(t *testing.T) {
	g := rng.NewUniformGenerator(12345)
	const n = 57
	values := randomFloats(g, n)
	sumTree, err := NewSum(values)
	require.NoError(t, err)
	minTree, err := NewMin(values)
	require.NoError(t, err)

	for step := 0; step < 2000; step++ {
		if g.Int64n(3) == 0 {
			i := int(g.Int64n(n))
			v := float64(g.Int64n(2001) - 1000)
			values[i] = v
			require.NoError(t, sumTree.Update(i, v))
			require.NoError(t, minTree.Update(i, v))
			continue
		}
		l, r := randomRange(g, n)
		s, err := sumTree.Query(l, r)
		require.NoError(t, err)
		require.Equal(t, floats.Sum(values[l:r+1]), s, "step %d: sum [%d,%d]", step, l, r)
		m, err := minTree.Query(l, r)
		require.NoError(t, err)
		require.Equal(t, floats.Min(values[l:r+1]), m, "step %d: min [%d,%d]", step, l, r)
	}
	require.NoError(t, sumTree.Check())
	require.NoError(t, minTree.Check())
}

func TestLazyEquivalentToPointUpdates(t *testing.T) {
	g := rng.NewUniformGenerator(777)
	for _, n := range []int{1, 2, 3, 6, 17, 64, 100} {
		lazy, err := NewLazyZeros[int64](n)
		require.NoError(t, err)
		plain, err := NewSum(make([]int64, n))
		require.NoError(t, err)
		model := make([]float64, n)

		for step := 0; step < 300; step++ {
			l, r := randomRange(g, n)
			d := g.Int64n(41) - 20
			require.NoError(t, lazy.RangeUpdate(l, r, d))
			for i := l; i <= r; i++ {
				v, err := plain.Get(i)
				require.NoError(t, err)
				require.NoError(t, plain.Update(i, v+d))
				model[i] += float64(d)
			}
			require.NoError(t, lazy.Check(), "n=%d step=%d", n, step)

			ql, qr := randomRange(g, n)
			got, err := lazy.Query(ql, qr)
			require.NoError(t, err)
			want, err := plain.Query(ql, qr)
			require.NoError(t, err)
			require.Equal(t, want, got, "n=%d step=%d: sum [%d,%d]", n, step, ql, qr)
			require.Equal(t, floats.Sum(model[ql:qr+1]), float64(got))
		}
		require.Equal(t, plain.Values(), lazy.Values())
		require.Equal(t, plain.Total(), lazy.Total())
	}
}
