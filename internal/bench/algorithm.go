package bench

import (
	"math/rand/v2"

	"github.com/roach88/sortbench/internal/sorts"
)

// Short names of the benchmarked algorithms.
const (
	AlgBogosort        = "bogosort"
	AlgBubbleSort      = "bubble-sort"
	AlgCocktailSort    = "cocktail-sort"
	AlgGnomeSort       = "gnome-sort"
	AlgHeapSort        = "heap-sort"
	AlgInsertionSort   = "insertion-sort"
	AlgMergeSort       = "merge-sort"
	AlgPermutationSort = "permutation-sort"
	AlgQuickSort       = "quick-sort"
	AlgSelectionSort   = "selection-sort"
)

// Algorithm describes one benchmarked sort.
// Sum accumulates elapsed CPU seconds across every trial of a session.
type Algorithm struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Enabled bool    `json:"enabled"`
	Sum     float64 `json:"sum_seconds"`
}

// declared is the fixed report order.
var declared = []Algorithm{
	{Name: AlgBogosort, Label: "Bogosort: "},
	{Name: AlgBubbleSort, Label: "Bubble Sort: "},
	{Name: AlgCocktailSort, Label: "Cocktail Sort: "},
	{Name: AlgGnomeSort, Label: "Gnome Sort: "},
	{Name: AlgHeapSort, Label: "Heap Sort: "},
	{Name: AlgInsertionSort, Label: "Insertion Sort: "},
	{Name: AlgMergeSort, Label: "Merge Sort: "},
	{Name: AlgPermutationSort, Label: "Permutation Sort: "},
	{Name: AlgQuickSort, Label: "Quick Sort: "},
	{Name: AlgSelectionSort, Label: "Selection Sort: "},
}

// Declared returns a fresh copy of the algorithm list in declared order,
// all disabled and with zero sums.
func Declared() []Algorithm {
	out := make([]Algorithm, len(declared))
	copy(out, declared)
	return out
}

// Names returns the short names in declared order.
func Names() []string {
	names := make([]string, len(declared))
	for i, a := range declared {
		names[i] = a.Name
	}
	return names
}

// IsKnown reports whether name is the short name of a declared algorithm.
func IsKnown(name string) bool {
	for _, a := range declared {
		if a.Name == name {
			return true
		}
	}
	return false
}

// labelWidth returns the length of the longest label.
func labelWidth(algs []Algorithm) int {
	width := 0
	for _, a := range algs {
		if n := len(a.Label); n > width {
			width = n
		}
	}
	return width
}

// Dispatch maps every short name to its sort over E.
// Bogosort draws its shuffles from r.
func Dispatch[E Number](r *rand.Rand) map[string]sorts.Func[E] {
	return map[string]sorts.Func[E]{
		AlgBogosort: func(s []E, less sorts.Less[E]) {
			sorts.Bogosort(s, less, r)
		},
		AlgBubbleSort:      sorts.BubbleSort[E],
		AlgCocktailSort:    sorts.CocktailSort[E],
		AlgGnomeSort:       sorts.GnomeSort[E],
		AlgHeapSort:        sorts.HeapSort[E],
		AlgInsertionSort:   sorts.InsertionSort[E],
		AlgMergeSort:       sorts.MergeSort[E],
		AlgPermutationSort: sorts.PermutationSort[E],
		AlgQuickSort:       sorts.QuickSort[E],
		AlgSelectionSort:   sorts.SelectionSort[E],
	}
}
