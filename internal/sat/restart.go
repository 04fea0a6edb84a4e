package sat

import "math"

// luby returns y raised to the exponent given by the Luby-Sinclair-Zuckerman
// sequence at index x: 1,1,2,1,1,2,4,1,1,2,1,1,2,4,8,… (P7). Indexing is
// 0-based, matching the reference sequence's first fifteen values.
func luby(y float64, x int64) float64 {
	// Find the finite Luby "sub-sequence" 2^k - 1 that contains x+1, i.e.
	// the smallest size >= x+1.
	var size, seq int64 = 1, 0
	for size < x+1 {
		seq++
		size = 2*size + 1
	}
	for size-1 != x {
		size = (size - 1) / 2
		seq--
		x = x % size
	}
	return math.Pow(y, float64(seq))
}
