package sorts

// QuickSort picks the median of the first, middle and last values as the
// pivot, partitions s into "< pivot", "== pivot" and "> pivot" ranges, and
// recurses on the outer two.
func QuickSort[E any](s []E, less Less[E]) {
	if len(s) < 2 {
		return
	}

	pivot := medianOfThree(s[0], s[len(s)/2], s[len(s)-1], less)

	split1 := partition(s, func(e E) bool { return less(e, pivot) })
	lessEq := NonStrict(less)
	split2 := split1 + partition(s[split1:], func(e E) bool { return lessEq(e, pivot) })

	QuickSort(s[:split1], less)
	QuickSort(s[split2:], less)
}

// medianOfThree returns max(min(a, b), min(max(a, b), c)).
func medianOfThree[E any](a, b, c E, less Less[E]) E {
	lo, hi := a, b
	if less(b, a) {
		lo, hi = b, a
	}
	if less(c, hi) {
		hi = c
	}
	if less(lo, hi) {
		return hi
	}
	return lo
}

// partition moves every element satisfying pred in front of those that
// don't and returns the index of the first element of the second group.
// Two cursors close in from both ends; the result is not stable.
func partition[E any](s []E, pred func(E) bool) int {
	first, last := 0, len(s)
	for {
		for {
			if first == last {
				return first
			}
			if !pred(s[first]) {
				break
			}
			first++
		}
		last--
		for {
			if first == last {
				return first
			}
			if pred(s[last]) {
				break
			}
			last--
		}
		s[first], s[last] = s[last], s[first]
		first++
	}
}
