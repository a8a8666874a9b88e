package huffcoder

import (
	"math"
	mathbits "math/bits"
)

// addSaturating returns a + b, clamped to math.MaxUint64.
func addSaturating(a, b uint64) uint64 {
	sum, carry := mathbits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// splitEven returns the [lo, hi) bounds of part i when n items are split
// into parts contiguous chunks of near-equal size.
func splitEven(n, parts, i int) (lo, hi int) {
	size, extra := n/parts, n%parts
	lo = i*size + minInt(i, extra)
	hi = lo + size
	if i < extra {
		hi++
	}
	return lo, hi
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
