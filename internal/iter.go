package internal

import (
	"iter"
)

// Combinations iterates every n-bit assignment in counting order from
// all-zero to all-one. Index 0 of the yielded slice is the most
// significant position of the counter. The slice is reused between
// yields; callers must copy it to retain a row.
func Combinations(n int) iter.Seq[[]uint8] {
	return func(yield func([]uint8) bool) {
		row := make([]uint8, n)
		for {
			if !yield(row) {
				return
			}
			// Increment as a big-endian counter.
			i := n - 1
			for ; i >= 0; i-- {
				if row[i] == 0 {
					row[i] = 1
					break
				}
				row[i] = 0
			}
			if i < 0 {
				return // Wrapped around to all-zero.
			}
		}
	}
}
