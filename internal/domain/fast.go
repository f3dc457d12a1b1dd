package domain

import (
	"time"

	"github.com/google/uuid"
)

// Fast is a single fasting session. EndTime is nil while the fast is still
// in progress. Completed implies EndTime is set, but that is an app-flow
// invariant, not one the merge engine enforces.
type Fast struct {
	ID             string     `json:"id"`
	StartTime      time.Time  `json:"startTime"`
	EndTime        *time.Time `json:"endTime,omitempty"`
	TargetDuration float64    `json:"targetDuration"`
	PlanID         string     `json:"planId"`
	PlanName       string     `json:"planName"`
	Completed      bool       `json:"completed"`
	Note           string     `json:"note,omitempty"`
}

func NewFast(planID, planName string, targetDuration float64, start time.Time) *Fast {
	return &Fast{
		ID:             uuid.New().String(),
		StartTime:      start,
		TargetDuration: targetDuration,
		PlanID:         planID,
		PlanName:       planName,
	}
}

// EffectiveTime is the conflict-resolution metric for fasts: the end time
// when the fast has one, otherwise the start time.
func (f *Fast) EffectiveTime() time.Time {
	if f.EndTime != nil {
		return *f.EndTime
	}
	return f.StartTime
}
