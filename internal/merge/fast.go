// Package merge reconciles a local and a remote collection of the same
// entity kind into one authoritative collection. Every function here is
// deterministic, never fails, and is idempotent when re-applied to its own
// output — a sync interrupted between writes can simply run again.
package merge

import (
	"sort"

	"fastlane-sync/internal/domain"
)

// Fasts applies the most-recently-active-wins policy: for an id present on
// both sides, the copy with the later effective time (end time if set, else
// start time) is kept, with the remote copy winning ties. Ids present on
// only one side are kept as-is. The result is sorted by start time,
// newest first.
func Fasts(local, remote []domain.Fast) []domain.Fast {
	byID := make(map[string]domain.Fast, len(local)+len(remote))
	order := make([]string, 0, len(local)+len(remote))

	for _, f := range local {
		if _, seen := byID[f.ID]; !seen {
			order = append(order, f.ID)
		}
		byID[f.ID] = f
	}

	for _, rf := range remote {
		lf, seen := byID[rf.ID]
		if !seen {
			order = append(order, rf.ID)
			byID[rf.ID] = rf
			continue
		}
		if !rf.EffectiveTime().Before(lf.EffectiveTime()) {
			byID[rf.ID] = rf
		}
	}

	merged := make([]domain.Fast, 0, len(order))
	for _, id := range order {
		merged = append(merged, byID[id])
	}

	// Stable so that (astronomically unlikely) equal start times keep
	// their relative order instead of flapping between runs.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].StartTime.After(merged[j].StartTime)
	})

	return merged
}
