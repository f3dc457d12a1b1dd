package remote

// Wire shapes exchanged with the FastLane backend. Field presence is part
// of the contract: optional local fields serialize to explicit nulls, and
// nullable remote fields decode to nil pointers. The converter layer is the
// only place these shapes meet the domain types.

type WireFast struct {
	ID             string  `json:"id"`
	StartTime      int64   `json:"startTime"`
	EndTime        *int64  `json:"endTime"`
	TargetDuration float64 `json:"targetDuration"`
	PlanID         string  `json:"planId"`
	PlanName       string  `json:"planName"`
	Completed      *bool   `json:"completed"`
	Note           *string `json:"note"`
}

type WireWeight struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type WireWater struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Milliliters float64 `json:"milliliters"`
}

type WireProfile struct {
	DisplayName          *string   `json:"displayName"`
	AvatarID             *int      `json:"avatarId"`
	CustomAvatarURI      *string   `json:"customAvatarUri"`
	WeightUnit           *string   `json:"weightUnit"`
	NotificationsEnabled *bool     `json:"notificationsEnabled"`
	UnlockedBadges       *[]string `json:"unlockedBadges"`
	FastingGoal          *string   `json:"fastingGoal"`
	ExperienceLevel      *string   `json:"experienceLevel"`
	PreferredPlanID      *string   `json:"preferredPlanId"`
	OnboardingCompleted  *bool     `json:"onboardingCompleted"`
}

// SyncRequest is the bulk upload: the client's full local state.
type SyncRequest struct {
	Fasts   []WireFast   `json:"fasts"`
	Weights []WireWeight `json:"weights"`
	Profile *WireProfile `json:"profile"`
	Water   []WireWater  `json:"water"`
}

// KindResult reports per-collection outcome counts from the server's own
// merge pass.
type KindResult struct {
	Synced int `json:"synced"`
	Errors int `json:"errors"`
}

// SyncData is the server's authoritative post-merge state for the account.
type SyncData struct {
	Fasts   []WireFast   `json:"fasts"`
	Weights []WireWeight `json:"weights"`
	Profile *WireProfile `json:"profile"`
	Water   []WireWater  `json:"water"`
}

type SyncResponse struct {
	Success bool                  `json:"success"`
	Error   string                `json:"error,omitempty"`
	Results map[string]KindResult `json:"results,omitempty"`
	Data    SyncData              `json:"data"`
}
