package fixed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/initwith/fixed"
)

// checkLength asserts the ordering contract for one array type A of length n:
// both entry points call the generator exactly n times, slot i receives
// invocation i, and ConstructIndexed sees indices 0..n-1 in order.
func checkLength[A fixed.Array[int]](t *testing.T, n int) {
	t.Helper()

	require.Equal(t, n, fixed.Len[A, int]())

	var calls int
	plain := fixed.Construct[A](func() int {
		calls++
		return calls - 1
	})
	require.Equal(t, n, calls, "Construct: invocation count for N=%d", n)
	require.Equal(t, n, len(plain))

	var seen []int
	indexed := fixed.ConstructIndexed[A](func(i int) int {
		seen = append(seen, i)
		return i * i
	})
	require.Len(t, seen, n, "ConstructIndexed: invocation count for N=%d", n)
	for i := 0; i < n; i++ {
		require.Equal(t, i, plain[i], "Construct: slot %d of N=%d", i, n)
		require.Equal(t, i, seen[i], "ConstructIndexed: call %d of N=%d", i, n)
		require.Equal(t, i*i, indexed[i], "ConstructIndexed: slot %d of N=%d", i, n)
	}
}
