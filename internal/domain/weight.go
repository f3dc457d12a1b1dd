package domain

import "github.com/google/uuid"

// WeightEntry is one weight measurement on a calendar day. Date uses the
// YYYY-MM-DD form, which sorts correctly as a plain string.
type WeightEntry struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

func NewWeightEntry(date string, weight float64) *WeightEntry {
	return &WeightEntry{
		ID:     uuid.New().String(),
		Date:   date,
		Weight: weight,
	}
}
