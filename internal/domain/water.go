package domain

import "github.com/google/uuid"

// WaterEntry is one day's water intake. The water log rides along with the
// bulk sync call but has no client-side conflict policy of its own.
type WaterEntry struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Milliliters float64 `json:"milliliters"`
}

func NewWaterEntry(date string, milliliters float64) *WaterEntry {
	return &WaterEntry{
		ID:          uuid.New().String(),
		Date:        date,
		Milliliters: milliliters,
	}
}
