package sorts

import "math/rand/v2"

// Bogosort shuffles s uniformly with r until it is sorted.
// Expected running time is O(n·n!); there is no upper bound.
func Bogosort[E any](s []E, less Less[E], r *rand.Rand) {
	for !IsSorted(s, less) {
		r.Shuffle(len(s), func(i, j int) {
			s[i], s[j] = s[j], s[i]
		})
	}
}
