package sorts

import "cmp"

// Less reports whether a must sort before b. It must be a strict weak ordering.
type Less[E any] func(a, b E) bool

// Func is the common shape of every sort in this package.
type Func[E any] func(s []E, less Less[E])

// Ascending returns the natural strict ordering of an ordered type.
func Ascending[E cmp.Ordered]() Less[E] {
	return func(a, b E) bool { return a < b }
}

// NonStrict derives the "less or equal" ordering from a strict one:
// lessOrEqual(a, b) == !less(b, a).
func NonStrict[E any](less Less[E]) Less[E] {
	return func(a, b E) bool { return !less(b, a) }
}

// IsSorted reports whether s is non-decreasing under less.
func IsSorted[E any](s []E, less Less[E]) bool {
	for i := len(s) - 1; i > 0; i-- {
		if less(s[i], s[i-1]) {
			return false
		}
	}
	return true
}

// upperBound returns the first index i in s with less(x, s[i]),
// or len(s) if there is none.
func upperBound[E any](s []E, x E, less Less[E]) int {
	i, j := 0, len(s)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !less(x, s[h]) {
			i = h + 1
		} else {
			j = h
		}
	}
	return i
}

func reverse[E any](s []E) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func swapRange[E any](s []E, a, b, n int) {
	for i := 0; i < n; i++ {
		s[a+i], s[b+i] = s[b+i], s[a+i]
	}
}

// rotate swaps the blocks s[a:m] and s[m:b] in place.
func rotate[E any](s []E, a, m, b int) {
	i := m - a
	j := b - m
	if i == 0 || j == 0 {
		return
	}

	for i != j {
		if i > j {
			swapRange(s, m-i, m, j)
			i -= j
		} else {
			swapRange(s, m-i, m+j-i, i)
			j -= i
		}
	}
	swapRange(s, m-i, m, i)
}
