// Package convert maps between the normalized local entity shapes and the
// wire shapes exchanged with the backend. All functions are pure and total:
// local optional fields absent become explicit wire nulls, and wire nulls
// (or missing fields) become local zero values. Nothing outside this
// package should see both representations of the same entity.
package convert

import (
	"time"

	"fastlane-sync/internal/domain"
	"fastlane-sync/internal/remote"
)

func ptr[T any](v T) *T { return &v }

func FastToWire(f domain.Fast) remote.WireFast {
	w := remote.WireFast{
		ID:             f.ID,
		StartTime:      f.StartTime.UnixMilli(),
		TargetDuration: f.TargetDuration,
		PlanID:         f.PlanID,
		PlanName:       f.PlanName,
		Completed:      ptr(f.Completed),
	}
	if f.EndTime != nil {
		w.EndTime = ptr(f.EndTime.UnixMilli())
	}
	if f.Note != "" {
		w.Note = ptr(f.Note)
	}
	return w
}

func FastFromWire(w remote.WireFast) domain.Fast {
	f := domain.Fast{
		ID:             w.ID,
		StartTime:      time.UnixMilli(w.StartTime),
		TargetDuration: w.TargetDuration,
		PlanID:         w.PlanID,
		PlanName:       w.PlanName,
	}
	if w.EndTime != nil {
		f.EndTime = ptr(time.UnixMilli(*w.EndTime))
	}
	if w.Completed != nil {
		f.Completed = *w.Completed
	}
	if w.Note != nil {
		f.Note = *w.Note
	}
	return f
}

func FastsToWire(fasts []domain.Fast) []remote.WireFast {
	out := make([]remote.WireFast, 0, len(fasts))
	for _, f := range fasts {
		out = append(out, FastToWire(f))
	}
	return out
}

func FastsFromWire(fasts []remote.WireFast) []domain.Fast {
	out := make([]domain.Fast, 0, len(fasts))
	for _, w := range fasts {
		out = append(out, FastFromWire(w))
	}
	return out
}
