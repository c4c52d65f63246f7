package huffman

import (
	"math"
	"sort"
)

// saturatingAdd returns a+b, clamped to math.MaxInt.
func saturatingAdd(a, b int) int {
	sum := a + b
	if sum < a {
		return math.MaxInt
	}
	return sum
}

func sortRunes(list []rune) {
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
}

func isBinary(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != Zero && s[i] != One {
			return false
		}
	}
	return true
}
