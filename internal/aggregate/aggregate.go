package aggregate

import (
	"sort"

	"github.com/fandomtools/ao3list/internal/model"
)

// Merge combines several fandom lists into one, preserving the order in
// which entries are first seen. An entry is appended only if no
// structurally equal entry (name, count, and URL all matching) already
// exists in the result. The second return value is the number of
// duplicates dropped.
//
// Design decision: We use a linear scan for the equality check rather than
// a hash set because expected data volumes are low thousands of records.
// A map keyed by the triple would behave identically and can be swapped in
// if volumes ever grow.
func Merge(lists ...[]model.Fandom) ([]model.Fandom, int) {
	merged := make([]model.Fandom, 0)
	dropped := 0
	for _, list := range lists {
		for _, f := range list {
			if contains(merged, f) {
				dropped++
				continue
			}
			merged = append(merged, f)
		}
	}
	return merged, dropped
}

// FilterAndSort retains only fandoms with at least minWorks works, then
// sorts the result by work count in descending order. The sort is stable:
// entries with equal counts keep their original relative order. The
// second return value is the number of entries removed by the filter.
func FilterAndSort(fandoms []model.Fandom, minWorks int) ([]model.Fandom, int) {
	kept := make([]model.Fandom, 0, len(fandoms))
	for _, f := range fandoms {
		if f.Count >= minWorks {
			kept = append(kept, f)
		}
	}
	filtered := len(fandoms) - len(kept)

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Count > kept[j].Count
	})

	return kept, filtered
}

// contains reports whether the list already holds a structurally equal
// fandom.
func contains(list []model.Fandom, f model.Fandom) bool {
	for _, existing := range list {
		if existing.Equal(f) {
			return true
		}
	}
	return false
}
