package generators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/initwith/fixed"
	"github.com/katalvlaran/initwith/generators"
)

func TestNumericIndexGenerators(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [5]int{0, 1, 4, 9, 16}, fixed.ConstructIndexed[[5]int](generators.Squares[int]))
	assert.Equal(t, [3]float64{0, 1, 2}, fixed.ConstructIndexed[[3]float64](generators.Identity[float64]))
	assert.Equal(t, [3]uint8{0, 1, 4}, fixed.ConstructIndexed[[3]uint8](generators.Squares[uint8]))
}

func TestRepeat(t *testing.T) {
	t.Parallel()

	require.Equal(t, [3]int{4, 4, 4}, fixed.Construct[[3]int](generators.Repeat(4)))
	require.Equal(t, [2]string{"x", "x"}, fixed.Construct[[2]string](generators.Repeat("x")))
}

func TestCounter(t *testing.T) {
	t.Parallel()

	require.Equal(t, [3]int{0, 1, 2}, fixed.Construct[[3]int](generators.Counter(0, 1)))
	require.Equal(t, [4]float64{1, 0.5, 0, -0.5}, fixed.Construct[[4]float64](generators.Counter(1.0, -0.5)))

	// state carries over between constructions that share a generator
	next := generators.Counter[int64](10, 10)
	first := fixed.Construct[[2]int64](next)
	second := fixed.Construct[[2]int64](next)
	require.Equal(t, [2]int64{10, 20}, first)
	require.Equal(t, [2]int64{30, 40}, second)
}

func TestCursor(t *testing.T) {
	t.Parallel()

	src := []string{"a", "b", "c"}
	require.Equal(t, [3]string{"a", "b", "c"}, fixed.Construct[[3]string](generators.Cursor(src)))

	// a source shorter than the array aborts construction
	var got [4]string
	require.Panics(t, func() {
		got = fixed.Construct[[4]string](generators.Cursor(src))
	})
	require.Equal(t, [4]string{}, got)
}
