package sorts

// PermutationSort steps s through its lexicographic successors until
// NextPermutation wraps around, which leaves s in ascending order.
// The number of steps is bounded only by n!, so keep n small.
func PermutationSort[E any](s []E, less Less[E]) {
	for NextPermutation(s, less) {
	}
}

// NextPermutation rearranges s into the next lexicographically greater
// permutation and reports true. If s is already the greatest permutation it
// is reset to the smallest (ascending) one and false is returned.
func NextPermutation[E any](s []E, less Less[E]) bool {
	if len(s) < 2 {
		return false
	}

	i := len(s) - 2
	for i >= 0 && !less(s[i], s[i+1]) {
		i--
	}
	if i < 0 {
		reverse(s)
		return false
	}

	j := len(s) - 1
	for !less(s[i], s[j]) {
		j--
	}
	s[i], s[j] = s[j], s[i]
	reverse(s[i+1:])
	return true
}
