package worker

import "sort"

// Reorder reads results until the channel closes and passes them to emit in
// index order, starting at index 0. Results are held back only while an
// earlier index is still outstanding. Indices missing at close time (items
// skipped after Stop) are passed over. It returns the number of results
// emitted.
func Reorder(results <-chan ProcessResult, emit func(ProcessResult)) int {
	pending := make(map[int]ProcessResult)
	next, emitted := 0, 0

	for r := range results {
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			emit(ready)
			emitted++
			next++
		}
	}

	// Whatever is left sits behind a gap; emit it in order.
	rest := make([]int, 0, len(pending))
	for index := range pending {
		rest = append(rest, index)
	}
	sort.Ints(rest)
	for _, index := range rest {
		emit(pending[index])
		emitted++
	}
	return emitted
}
