package sorts

// InsertionSort grows a sorted prefix. Each element is placed after every
// equal element already in the prefix (upper bound), which keeps it stable.
func InsertionSort[E any](s []E, less Less[E]) {
	for i := 1; i < len(s); i++ {
		pos := upperBound(s[:i], s[i], less)
		if pos == i {
			continue
		}
		v := s[i]
		copy(s[pos+1:i+1], s[pos:i])
		s[pos] = v
	}
}
