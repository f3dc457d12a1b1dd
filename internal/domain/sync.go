package domain

import "time"

// Snapshot is the authoritative post-merge state returned by a full sync,
// handed back to the caller so in-memory views can refresh without a second
// store read.
type Snapshot struct {
	Fasts    []Fast        `json:"fasts"`
	Weights  []WeightEntry `json:"weights"`
	Water    []WaterEntry  `json:"water"`
	Profile  UserProfile   `json:"profile"`
	SyncTime time.Time     `json:"syncTime"`
}
