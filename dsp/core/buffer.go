package core

// ZeroPad returns a new slice of length n holding src followed by zeros.
// If n is shorter than src, src is truncated.
func ZeroPad(src []complex128, n int) []complex128 {
	if n < 0 {
		n = 0
	}
	out := make([]complex128, n)
	copy(out, src)
	return out
}
