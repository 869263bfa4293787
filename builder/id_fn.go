// Package builder provides helper functions for naming generated cities.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a city name from its zero-based index.
// It must be pure: the same idx always yields the same name, and distinct
// indices yield distinct names.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn returns spreadsheet-column style names: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns prefix + decimal index, e.g. "City0", "City1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// Names returns fn(0) … fn(n-1).
func Names(n int, fn IDFn) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fn(i)
	}

	return out
}

// LetterNames returns n spreadsheet-column style names.
func LetterNames(n int) []string { return Names(n, LetterIDFn) }
