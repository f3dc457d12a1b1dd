package merge

import (
	"sort"

	"fastlane-sync/internal/domain"
)

// Profile reconciles the singleton profile field-wise. Scalars: a non-nil
// remote value wins, a nil one keeps the local value. Badges are a
// deduplicated union — achievements are monotonic and neither side may lose
// one. CustomAvatarURI keeps the local value when the remote has none,
// since it references a file on this device.
func Profile(local domain.UserProfile, remote domain.ProfilePatch) domain.UserProfile {
	merged := local

	if remote.DisplayName != nil {
		merged.DisplayName = *remote.DisplayName
	}
	if remote.AvatarID != nil {
		merged.AvatarID = *remote.AvatarID
	}
	if remote.CustomAvatarURI != nil {
		merged.CustomAvatarURI = *remote.CustomAvatarURI
	}
	if remote.WeightUnit != nil {
		merged.WeightUnit = *remote.WeightUnit
	}
	if remote.NotificationsEnabled != nil {
		merged.NotificationsEnabled = *remote.NotificationsEnabled
	}
	if remote.FastingGoal != nil {
		merged.FastingGoal = *remote.FastingGoal
	}
	if remote.ExperienceLevel != nil {
		merged.ExperienceLevel = *remote.ExperienceLevel
	}
	if remote.PreferredPlanID != nil {
		merged.PreferredPlanID = *remote.PreferredPlanID
	}
	if remote.OnboardingCompleted != nil {
		merged.OnboardingCompleted = *remote.OnboardingCompleted
	}

	merged.UnlockedBadges = unionBadges(local.UnlockedBadges, remote.UnlockedBadges)

	return merged
}

func unionBadges(local, remote []string) []string {
	seen := make(map[string]struct{}, len(local)+len(remote))
	union := make([]string, 0, len(local)+len(remote))
	for _, b := range local {
		if _, ok := seen[b]; !ok {
			seen[b] = struct{}{}
			union = append(union, b)
		}
	}
	for _, b := range remote {
		if _, ok := seen[b]; !ok {
			seen[b] = struct{}{}
			union = append(union, b)
		}
	}
	sort.Strings(union)
	return union
}
