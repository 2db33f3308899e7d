package addsub

// CarryMark is the marker written under a column that receives a carry or a
// borrow.
const CarryMark = "1"

// Carries computes the carry (add) or borrow (!add) row for a and b, given as
// most-significant-first digits. The result has max(len(a), len(b)) entries,
// aligned to the right like the operands; an entry is CarryMark when the
// column to its right overflowed (or underflowed) into it, "" otherwise.
//
// Only columns where both operands have a digit take part. When the operands
// differ in length no carry is propagated into the excess high-order columns
// of the longer one.
func Carries(a, b []int, add bool) []string {
	n := max(len(a), len(b))
	in := make([]bool, n) // in[k]: column k (from the right) receives a carry
	for k := 0; k < n-1; k++ {
		if k >= len(a) || k >= len(b) {
			continue
		}
		da, db := a[len(a)-1-k], b[len(b)-1-k]
		c := 0
		if in[k] {
			c = 1
		}
		if add {
			in[k+1] = da+db+c > 9
		} else {
			in[k+1] = da-db-c < 0
		}
	}

	out := make([]string, n)
	for k, carried := range in {
		if carried {
			out[n-1-k] = CarryMark
		}
	}
	return out
}
