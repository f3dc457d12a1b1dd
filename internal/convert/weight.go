package convert

import (
	"fastlane-sync/internal/domain"
	"fastlane-sync/internal/remote"
)

func WeightToWire(e domain.WeightEntry) remote.WireWeight {
	return remote.WireWeight{ID: e.ID, Date: e.Date, Weight: e.Weight}
}

func WeightFromWire(w remote.WireWeight) domain.WeightEntry {
	return domain.WeightEntry{ID: w.ID, Date: w.Date, Weight: w.Weight}
}

func WeightsToWire(entries []domain.WeightEntry) []remote.WireWeight {
	out := make([]remote.WireWeight, 0, len(entries))
	for _, e := range entries {
		out = append(out, WeightToWire(e))
	}
	return out
}

func WeightsFromWire(weights []remote.WireWeight) []domain.WeightEntry {
	out := make([]domain.WeightEntry, 0, len(weights))
	for _, w := range weights {
		out = append(out, WeightFromWire(w))
	}
	return out
}

func WaterToWire(e domain.WaterEntry) remote.WireWater {
	return remote.WireWater{ID: e.ID, Date: e.Date, Milliliters: e.Milliliters}
}

func WaterFromWire(w remote.WireWater) domain.WaterEntry {
	return domain.WaterEntry{ID: w.ID, Date: w.Date, Milliliters: w.Milliliters}
}

func WaterLogToWire(entries []domain.WaterEntry) []remote.WireWater {
	out := make([]remote.WireWater, 0, len(entries))
	for _, e := range entries {
		out = append(out, WaterToWire(e))
	}
	return out
}

func WaterLogFromWire(entries []remote.WireWater) []domain.WaterEntry {
	out := make([]domain.WaterEntry, 0, len(entries))
	for _, w := range entries {
		out = append(out, WaterFromWire(w))
	}
	return out
}
