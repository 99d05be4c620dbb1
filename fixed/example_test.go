package fixed_test

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/initwith/fixed"
)

// ExampleConstruct builds an array of slices where each element extends the
// previous one, without a placeholder pass.
func ExampleConstruct() {
	var (
		seed []int
		next int
	)
	arr := fixed.Construct[[3][]int](func() []int {
		seed = append(seed, next)
		next++
		return slices.Clone(seed)
	})
	fmt.Println(arr)
	// Output:
	// [[0] [0 1] [0 1 2]]
}

// ExampleConstructIndexed fills each slot from its index.
func ExampleConstructIndexed() {
	sq := fixed.ConstructIndexed[[5]int](func(i int) int { return i * i })
	fmt.Println(sq)
	// Output:
	// [0 1 4 9 16]
}

// ExampleTryConstructIndexed stops at the first generator error and reports its slot.
func ExampleTryConstructIndexed() {
	fields := []string{"1", "2", "x", "4"}
	_, err := fixed.TryConstructIndexed[[4]int](func(i int) (int, error) {
		return strconv.Atoi(fields[i])
	})

	var se *fixed.SlotError
	if errors.As(err, &se) {
		fmt.Println("failed at slot", se.Slot, errors.Is(err, fixed.ErrGeneratorFailed))
	}
	// Output:
	// failed at slot 2 true
}

// ExampleFromSeq takes the first N values of a longer sequence.
func ExampleFromSeq() {
	arr, err := fixed.FromSeq[[2]string](slices.Values([]string{"head", "next", "rest"}))
	fmt.Println(arr, err)
	// Output:
	// [head next] <nil>
}
