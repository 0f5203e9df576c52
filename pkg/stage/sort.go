package stage

import (
	"sort"
	"time"

	"plantlog/entities"
)

// SortForDisplay orders plants by current-stage bucket (soak, strat, sow,
// sprout, then anything unknown) and, inside a bucket, by urgency rank
// ascending. The sort is stable and returns a new slice; the input order is
// preserved for ties and the result is never written back to storage.
func SortForDisplay(plants []entities.Plant, now time.Time) []entities.Plant {
	out := make([]entities.Plant, len(plants))
	copy(out, plants)

	key := func(p entities.Plant) (int, int) {
		cur := Current(p)
		if cur == nil {
			return 99, completedRank
		}
		return Priority(cur.Kind), UrgencyRank(*cur, now)
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, ri := key(out[i])
		pj, rj := key(out[j])
		if pi != pj {
			return pi < pj
		}
		return ri < rj
	})
	return out
}
