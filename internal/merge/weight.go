package merge

import (
	"sort"

	"fastlane-sync/internal/domain"
)

// Weights applies the remote-always-wins policy: the remote copy replaces
// the local one for every shared id, and local-only ids are kept until a
// later full sync pushes them. Sorted by date, newest first (YYYY-MM-DD
// orders correctly as a string).
func Weights(local, remote []domain.WeightEntry) []domain.WeightEntry {
	byID := make(map[string]domain.WeightEntry, len(local)+len(remote))
	order := make([]string, 0, len(local)+len(remote))

	for _, e := range local {
		if _, seen := byID[e.ID]; !seen {
			order = append(order, e.ID)
		}
		byID[e.ID] = e
	}
	for _, e := range remote {
		if _, seen := byID[e.ID]; !seen {
			order = append(order, e.ID)
		}
		byID[e.ID] = e
	}

	merged := make([]domain.WeightEntry, 0, len(order))
	for _, id := range order {
		merged = append(merged, byID[id])
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date > merged[j].Date
	})

	return merged
}

// Water follows the same remote-wins policy as weights.
func Water(local, remote []domain.WaterEntry) []domain.WaterEntry {
	byID := make(map[string]domain.WaterEntry, len(local)+len(remote))
	order := make([]string, 0, len(local)+len(remote))

	for _, e := range local {
		if _, seen := byID[e.ID]; !seen {
			order = append(order, e.ID)
		}
		byID[e.ID] = e
	}
	for _, e := range remote {
		if _, seen := byID[e.ID]; !seen {
			order = append(order, e.ID)
		}
		byID[e.ID] = e
	}

	merged := make([]domain.WaterEntry, 0, len(order))
	for _, id := range order {
		merged = append(merged, byID[id])
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date > merged[j].Date
	})

	return merged
}
