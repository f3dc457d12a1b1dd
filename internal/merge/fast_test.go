package merge

import (
	"reflect"
	"testing"
	"time"

	"fastlane-sync/internal/domain"
)

func ts(ms int64) time.Time {
	return time.UnixMilli(ms)
}

func tsPtr(ms int64) *time.Time {
	t := time.UnixMilli(ms)
	return &t
}

func TestFasts_RemoteWinsOnLaterEffectiveTime(t *testing.T) {
	local := []domain.Fast{{ID: "f1", StartTime: ts(1000)}}
	remote := []domain.Fast{{ID: "f1", StartTime: ts(1000), EndTime: tsPtr(1500), Completed: true}}

	merged := Fasts(local, remote)

	if len(merged) != 1 {
		t.Fatalf("expected 1 fast, got %d", len(merged))
	}
	if !merged[0].Completed {
		t.Error("expected remote copy (completed) to win")
	}
	if merged[0].EndTime == nil || !merged[0].EndTime.Equal(ts(1500)) {
		t.Errorf("expected remote end time to be kept, got %v", merged[0].EndTime)
	}
}

func TestFasts_LocalKeptWhenMoreAdvanced(t *testing.T) {
	local := []domain.Fast{{ID: "f1", StartTime: ts(1000), EndTime: tsPtr(2000), Note: "local edit"}}
	remote := []domain.Fast{{ID: "f1", StartTime: ts(1000), EndTime: tsPtr(1500)}}

	merged := Fasts(local, remote)

	if len(merged) != 1 {
		t.Fatalf("expected 1 fast, got %d", len(merged))
	}
	if merged[0].Note != "local edit" {
		t.Error("expected local copy to be kept unmodified")
	}
}

func TestFasts_RemoteWinsTies(t *testing.T) {
	local := []domain.Fast{{ID: "f1", StartTime: ts(1000), Note: "local"}}
	remote := []domain.Fast{{ID: "f1", StartTime: ts(1000), Note: "remote"}}

	merged := Fasts(local, remote)

	if merged[0].Note != "remote" {
		t.Errorf("expected remote to win on equal effective time, got %q", merged[0].Note)
	}
}

func TestFasts_DisjointIDsUnion(t *testing.T) {
	local := []domain.Fast{{ID: "f1", StartTime: ts(1000)}}
	remote := []domain.Fast{{ID: "f3", StartTime: ts(3000)}}

	merged := Fasts(local, remote)

	if len(merged) != 2 {
		t.Fatalf("expected 2 fasts, got %d", len(merged))
	}
	ids := map[string]bool{}
	for _, f := range merged {
		ids[f.ID] = true
	}
	if !ids["f1"] || !ids["f3"] {
		t.Errorf("expected both f1 and f3 in result, got %v", ids)
	}
}

func TestFasts_SortedByStartTimeDescending(t *testing.T) {
	local := []domain.Fast{
		{ID: "old", StartTime: ts(1000)},
		{ID: "newest", StartTime: ts(5000)},
	}
	remote := []domain.Fast{{ID: "mid", StartTime: ts(3000)}}

	merged := Fasts(local, remote)

	want := []string{"newest", "mid", "old"}
	for i, id := range want {
		if merged[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, merged[i].ID)
		}
	}
}

func TestFasts_EqualStartTimesDoNotCrash(t *testing.T) {
	local := []domain.Fast{
		{ID: "a", StartTime: ts(1000)},
		{ID: "b", StartTime: ts(1000)},
	}
	remote := []domain.Fast{{ID: "c", StartTime: ts(1000)}}

	merged := Fasts(local, remote)
	if len(merged) != 3 {
		t.Fatalf("expected 3 fasts, got %d", len(merged))
	}
}

func TestFasts_EmptySides(t *testing.T) {
	remote := []domain.Fast{{ID: "f1", StartTime: ts(1000)}}

	if got := Fasts(nil, remote); len(got) != 1 {
		t.Errorf("nil local: expected 1, got %d", len(got))
	}
	if got := Fasts(remote, nil); len(got) != 1 {
		t.Errorf("nil remote: expected 1, got %d", len(got))
	}
	if got := Fasts(nil, nil); len(got) != 0 {
		t.Errorf("both nil: expected empty, got %d", len(got))
	}
}

func TestFasts_Idempotent(t *testing.T) {
	local := []domain.Fast{
		{ID: "f1", StartTime: ts(1000)},
		{ID: "f2", StartTime: ts(2000), EndTime: tsPtr(4000), Completed: true},
	}
	remote := []domain.Fast{
		{ID: "f1", StartTime: ts(1000), EndTime: tsPtr(1500), Completed: true},
		{ID: "f3", StartTime: ts(3000)},
	}

	once := Fasts(local, remote)
	twice := Fasts(once, remote)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merge not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}
