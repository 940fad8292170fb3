package sorts

// BubbleSort makes adjacent-pair passes, shrinking the right boundary by
// one each pass, and stops after a pass without swaps.
func BubbleSort[E any](s []E, less Less[E]) {
	last := len(s)
	swapped := true
	for last != 0 && swapped {
		last--
		swapped = false
		for i := 0; i < last; i++ {
			if less(s[i+1], s[i]) {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
	}
}

// CocktailSort alternates forward and backward bubble passes, narrowing
// both boundaries each cycle. It stops as soon as a pass makes no swap.
func CocktailSort[E any](s []E, less Less[E]) {
	first, last := 0, len(s)
	swapped := true
	for first != last && swapped {
		last--
		swapped = false
		for i := first; i < last; i++ {
			if less(s[i+1], s[i]) {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
		if !swapped {
			break
		}

		swapped = false
		for i := last - 1; i > first; i-- {
			if less(s[i], s[i-1]) {
				s[i], s[i-1] = s[i-1], s[i]
				swapped = true
			}
		}
		first++
	}
}

// GnomeSort walks forward while neighbours are ordered and swaps an element
// backwards otherwise. After stepping back it resumes at the furthest point
// reached going forward (next), not at the start.
func GnomeSort[E any](s []E, less Less[E]) {
	i, next := 1, 2
	for i < len(s) {
		if !less(s[i], s[i-1]) {
			i = next
			next++
			continue
		}

		s[i-1], s[i] = s[i], s[i-1]
		i--
		if i == 0 {
			i = next
			next++
		}
	}
}

// SelectionSort swaps the first minimum of the unsorted suffix into place.
func SelectionSort[E any](s []E, less Less[E]) {
	for i := range s {
		m := i
		for j := i + 1; j < len(s); j++ {
			if less(s[j], s[m]) {
				m = j
			}
		}
		s[i], s[m] = s[m], s[i]
	}
}
