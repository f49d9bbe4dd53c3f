// Package order provides a stable comparison-based sort for slices.
//
// The implementation is a top-down merge sort with a single auxiliary
// buffer: O(n log n) comparisons, O(n) extra space. Stability is the
// point of this package: elements the comparator treats as equal keep
// their input order, which the hull pipeline relies on when a comparator
// only establishes a partial key (equal polar angles resolved by a
// secondary distance key).
package order

// Stable sorts items in place using less, preserving the relative order
// of elements for which neither less(a, b) nor less(b, a) holds. The
// comparator must be a strict weak ordering.
func Stable[E any](items []E, less func(a, b E) bool) {
	if len(items) < 2 {
		return
	}
	buf := make([]E, len(items))
	mergeSort(items, buf, less)
}

// mergeSort recursively splits items at the midpoint, sorts both halves,
// and merges them through buf. buf must have the same length as items.
func mergeSort[E any](items, buf []E, less func(a, b E) bool) {
	if len(items) < 2 {
		return
	}
	mid := len(items) / 2
	mergeSort(items[:mid], buf[:mid], less)
	mergeSort(items[mid:], buf[mid:], less)
	merge(items, buf, mid, less)
}

// merge combines the two sorted halves items[:mid] and items[mid:] back
// into items. The left-half element wins ties, which is what makes the
// sort stable.
func merge[E any](items, buf []E, mid int, less func(a, b E) bool) {
	copy(buf, items)
	left, right := buf[:mid], buf[mid:]

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			items[k] = right[j]
			j++
		} else {
			items[k] = left[i]
			i++
		}
		k++
	}
	for i < len(left) {
		items[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		items[k] = right[j]
		j++
		k++
	}
}
