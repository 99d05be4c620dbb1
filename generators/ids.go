// Package generators: index generators that render a slot as a string ID.
package generators

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/initwith/fixed"
)

// Decimal returns the decimal string of slot, e.g. 0→"0", 42→"42".
// Complexity: O(d) time where d = number of digits. Never panics.
func Decimal(slot int) string {
	return strconv.Itoa(slot)
}

// Symbol returns the uppercase Latin letter for slot in [0..25], e.g. 0→"A", 25→"Z".
// Panics if slot < 0 or slot > 25.
func Symbol(slot int) string {
	if slot < 0 || slot > 25 {
		panic(fmt.Sprintf("Symbol: slot must be in [0,25], got %d", slot))
	}

	return string('A' + rune(slot))
}

// Alphanumeric returns a base-36 string for slot, e.g. 10→"a", 35→"z", 36→"10".
// Panics if slot < 0.
func Alphanumeric(slot int) string {
	if slot < 0 {
		panic(fmt.Sprintf("Alphanumeric: slot must be ≥ 0, got %d", slot))
	}

	return strconv.FormatInt(int64(slot), 36)
}

// ExcelColumn returns the spreadsheet column name for slot, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(log₂₆ slot). Panics if slot < 0.
func ExcelColumn(slot int) string {
	if slot < 0 {
		panic(fmt.Sprintf("ExcelColumn: slot must be ≥ 0, got %d", slot))
	}
	// letters are produced least-significant first
	var runes []rune
	var i, j int
	for i = slot; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// Hex returns the lowercase hexadecimal representation of slot, e.g. 255→"ff".
// Panics if slot < 0.
func Hex(slot int) string {
	if slot < 0 {
		panic(fmt.Sprintf("Hex: slot must be ≥ 0, got %d", slot))
	}

	return strconv.FormatInt(int64(slot), 16)
}

// Prefixed returns an index generator yielding prefix + decimal slot,
// e.g. Prefixed("v") → "v0","v1",…
func Prefixed(prefix string) fixed.IndexGenerator[string] {
	return func(slot int) string {
		if slot < 0 {
			panic(fmt.Sprintf("Prefixed: slot must be ≥ 0, got %d", slot))
		}
		return prefix + strconv.Itoa(slot)
	}
}
