// Package sorts implements the classical comparison sorts benchmarked by
// sortbench.
//
// Every routine sorts a slice in place, ascending, using only the supplied
// strict ordering and element swaps or moves. No routine allocates memory
// proportional to the input beyond O(log n) recursion depth.
//
// # Algorithms
//
//   - Bogosort: shuffle until sorted (unbounded, needs a *rand.Rand)
//   - BubbleSort, CocktailSort, GnomeSort: stable O(n²) exchange sorts
//   - HeapSort: binary max-heap, O(n log n), not stable
//   - InsertionSort: binary upper-bound search + rotate, stable
//   - MergeSort: recursive halving with in-place symmetric merge, stable
//   - PermutationSort: step through lexicographic permutations, O(n!)
//   - QuickSort: median-of-three pivot, three-way partition
//   - SelectionSort: repeated minimum selection, not stable
//
// All routines terminate on empty, single-element and all-equal input.
package sorts
