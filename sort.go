package fuzzlane

import "sort"

// sortMatches orders matches by descending score. With stableTiebreak,
// ties break by ascending id (a deterministic, reproducible order);
// otherwise the order of tied matches is not defined (sort.Slice is not
// stable).
func sortMatches(matches []Match, stableTiebreak bool) {
	if stableTiebreak {
		sort.SliceStable(matches, func(i, j int) bool {
			if matches[i].Score != matches[j].Score {
				return matches[i].Score > matches[j].Score
			}
			return matches[i].ID < matches[j].ID
		})
		return
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
}
