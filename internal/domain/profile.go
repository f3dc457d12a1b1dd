package domain

const (
	WeightUnitLbs = "lbs"
	WeightUnitKg  = "kg"
)

// UserProfile is the singleton per-user record. CustomAvatarURI points at a
// file on the device, so it has no meaningful remote representation.
type UserProfile struct {
	DisplayName          string   `json:"displayName"`
	AvatarID             int      `json:"avatarId"`
	CustomAvatarURI      string   `json:"customAvatarUri,omitempty"`
	WeightUnit           string   `json:"weightUnit"`
	NotificationsEnabled bool     `json:"notificationsEnabled"`
	UnlockedBadges       []string `json:"unlockedBadges"`
	FastingGoal          string   `json:"fastingGoal,omitempty"`
	ExperienceLevel      string   `json:"experienceLevel,omitempty"`
	PreferredPlanID      string   `json:"preferredPlanId,omitempty"`
	OnboardingCompleted  bool     `json:"onboardingCompleted"`
}

// ProfilePatch is the normalized view of a remote profile used by the merge
// engine. A nil field means the remote supplied no value for it (the wire
// distinction between null and absent is erased by the converter layer).
type ProfilePatch struct {
	DisplayName          *string
	AvatarID             *int
	CustomAvatarURI      *string
	WeightUnit           *string
	NotificationsEnabled *bool
	UnlockedBadges       []string
	FastingGoal          *string
	ExperienceLevel      *string
	PreferredPlanID      *string
	OnboardingCompleted  *bool
}
