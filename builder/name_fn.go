// Package builder provides naming schemes for generated points.
package builder

import (
	"fmt"
	"strconv"
)

// NameFn generates a point name from its zero-based index.
// It must be pure: the same idx always yields the same name.
type NameFn func(idx int) string

// DefaultNameFn returns "P" followed by the decimal index, e.g. 0→"P0".
func DefaultNameFn(idx int) string {
	return "P" + strconv.Itoa(idx)
}

// ExcelColumnNameFn returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnNameFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnNameFn: idx must be ≥ 0, got %d", idx))
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

// PrefixNameFn returns a NameFn producing prefix+index, e.g. "D1 #3".
func PrefixNameFn(prefix string) NameFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}
