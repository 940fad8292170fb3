package sorts

// MergeSort halves s recursively and merges the sorted halves in place.
// Equal elements keep their relative order.
func MergeSort[E any](s []E, less Less[E]) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	MergeSort(s[:mid], less)
	MergeSort(s[mid:], less)
	symMerge(s, 0, mid, len(s), less)
}

// symMerge merges the sorted runs s[a:m] and s[m:b] without a buffer
// (Kim & Kutzner, "Stable Minimum Storage Merging by Symmetric Comparisons").
// Elements of the left run win ties.
func symMerge[E any](s []E, a, m, b int, less Less[E]) {
	if m-a == 1 {
		// Lowest i in [m, b) with s[i] >= s[a].
		i, j := m, b
		for i < j {
			h := int(uint(i+j) >> 1)
			if less(s[h], s[a]) {
				i = h + 1
			} else {
				j = h
			}
		}
		for k := a; k < i-1; k++ {
			s[k], s[k+1] = s[k+1], s[k]
		}
		return
	}

	if b-m == 1 {
		// Lowest i in [a, m) with s[i] > s[m].
		i, j := a, m
		for i < j {
			h := int(uint(i+j) >> 1)
			if !less(s[m], s[h]) {
				i = h + 1
			} else {
				j = h
			}
		}
		for k := m; k > i; k-- {
			s[k], s[k-1] = s[k-1], s[k]
		}
		return
	}

	mid := int(uint(a+b) >> 1)
	n := mid + m
	var start, r int
	if m > mid {
		start = n - b
		r = mid
	} else {
		start = a
		r = m
	}
	p := n - 1

	for start < r {
		c := int(uint(start+r) >> 1)
		if !less(s[p-c], s[c]) {
			start = c + 1
		} else {
			r = c
		}
	}

	end := n - start
	if start < m && m < end {
		rotate(s, start, m, end)
	}
	if a < start && start < mid {
		symMerge(s, a, start, mid, less)
	}
	if mid < end && end < b {
		symMerge(s, mid, end, b, less)
	}
}
