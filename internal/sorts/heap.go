package sorts

// HeapSort builds a binary max-heap over s and repeatedly moves the maximum
// to the end of the shrinking heap.
func HeapSort[E any](s []E, less Less[E]) {
	n := len(s)
	for i := (n - 1) / 2; i >= 0; i-- {
		siftDown(s, i, n, less)
	}
	for i := n - 1; i > 0; i-- {
		s[0], s[i] = s[i], s[0]
		siftDown(s, 0, i, less)
	}
}

// siftDown restores the heap property for the subtree rooted at root,
// considering only s[:hi].
func siftDown[E any](s []E, root, hi int, less Less[E]) {
	for {
		child := 2*root + 1
		if child >= hi {
			return
		}
		if child+1 < hi && less(s[child], s[child+1]) {
			child++
		}
		if !less(s[root], s[child]) {
			return
		}
		s[root], s[child] = s[child], s[root]
		root = child
	}
}
