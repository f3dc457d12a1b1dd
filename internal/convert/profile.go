package convert

import (
	"fastlane-sync/internal/domain"
	"fastlane-sync/internal/remote"
)

// optStr sends empty local strings as wire nulls.
func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return ptr(s)
}

func ProfileToWire(p domain.UserProfile) remote.WireProfile {
	badges := p.UnlockedBadges
	if badges == nil {
		badges = []string{}
	}
	return remote.WireProfile{
		DisplayName:          ptr(p.DisplayName),
		AvatarID:             ptr(p.AvatarID),
		CustomAvatarURI:      optStr(p.CustomAvatarURI),
		WeightUnit:           ptr(p.WeightUnit),
		NotificationsEnabled: ptr(p.NotificationsEnabled),
		UnlockedBadges:       ptr(badges),
		FastingGoal:          optStr(p.FastingGoal),
		ExperienceLevel:      optStr(p.ExperienceLevel),
		PreferredPlanID:      optStr(p.PreferredPlanID),
		OnboardingCompleted:  ptr(p.OnboardingCompleted),
	}
}

// ProfileFromWire normalizes a remote profile into a patch. A nil wire
// profile (server has no profile for the account) yields the zero patch,
// which the merge engine treats as "keep everything local".
func ProfileFromWire(w *remote.WireProfile) domain.ProfilePatch {
	if w == nil {
		return domain.ProfilePatch{}
	}
	patch := domain.ProfilePatch{
		DisplayName:          w.DisplayName,
		AvatarID:             w.AvatarID,
		CustomAvatarURI:      w.CustomAvatarURI,
		WeightUnit:           w.WeightUnit,
		NotificationsEnabled: w.NotificationsEnabled,
		FastingGoal:          w.FastingGoal,
		ExperienceLevel:      w.ExperienceLevel,
		PreferredPlanID:      w.PreferredPlanID,
		OnboardingCompleted:  w.OnboardingCompleted,
	}
	if w.UnlockedBadges != nil {
		patch.UnlockedBadges = append([]string(nil), *w.UnlockedBadges...)
	}
	return patch
}
