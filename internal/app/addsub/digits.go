package addsub

import "strconv"

// Digits splits a non-negative integer into its decimal digits, most
// significant first. Digits(0) is [0].
func Digits(n int) []int {
	s := strconv.Itoa(n)
	out := make([]int, len(s))
	for i := range s {
		out[i] = int(s[i] - '0')
	}
	return out
}

// cells turns digits into grid cell text.
func cells(d []int) []string {
	out := make([]string, len(d))
	for i, v := range d {
		out[i] = strconv.Itoa(v)
	}
	return out
}
