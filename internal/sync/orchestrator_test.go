package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"fastlane-sync/internal/domain"
	"fastlane-sync/internal/remote"
)

type mockStore struct {
	fasts   []domain.Fast
	weights []domain.WeightEntry
	water   []domain.WaterEntry
	profile *domain.UserProfile

	lastSync    time.Time
	hasLastSync bool

	readErr  error
	writeErr error

	writes []string
}

func newMockStore() *mockStore { return &mockStore{} }

func (m *mockStore) ReadFasts() ([]domain.Fast, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.fasts, nil
}

func (m *mockStore) WriteFasts(fasts []domain.Fast) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.fasts = fasts
	m.writes = append(m.writes, "fasts")
	return nil
}

func (m *mockStore) ReadWeights() ([]domain.WeightEntry, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.weights, nil
}

func (m *mockStore) WriteWeights(entries []domain.WeightEntry) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.weights = entries
	m.writes = append(m.writes, "weights")
	return nil
}

func (m *mockStore) ReadWater() ([]domain.WaterEntry, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.water, nil
}

func (m *mockStore) WriteWater(entries []domain.WaterEntry) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.water = entries
	m.writes = append(m.writes, "water")
	return nil
}

func (m *mockStore) ReadProfile() (*domain.UserProfile, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.profile, nil
}

func (m *mockStore) WriteProfile(profile *domain.UserProfile) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.profile = profile
	m.writes = append(m.writes, "profile")
	return nil
}

func (m *mockStore) LastSyncTime() (time.Time, bool, error) {
	return m.lastSync, m.hasLastSync, nil
}

func (m *mockStore) SetLastSyncTime(t time.Time) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.lastSync = t
	m.hasLastSync = true
	m.writes = append(m.writes, "last_sync_timestamp")
	return nil
}

type mockAPI struct {
	calls    int
	syncResp *remote.SyncResponse
	err      error

	entered chan struct{}
	release chan struct{}
}

func (m *mockAPI) SyncAll(ctx context.Context, req *remote.SyncRequest) (*remote.SyncResponse, error) {
	m.calls++
	if m.entered != nil {
		m.entered <- struct{}{}
		<-m.release
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.syncResp, nil
}

func (m *mockAPI) PushFast(ctx context.Context, fast remote.WireFast) error {
	m.calls++
	return m.err
}

func (m *mockAPI) DeleteFast(ctx context.Context, id string) error {
	m.calls++
	return m.err
}

func (m *mockAPI) PushWeight(ctx context.Context, weight remote.WireWeight) error {
	m.calls++
	return m.err
}

func (m *mockAPI) PushProfile(ctx context.Context, profile remote.WireProfile) error {
	m.calls++
	return m.err
}

type mockCreds bool

func (c mockCreds) Authenticated() bool { return bool(c) }

func emptySyncResp() *remote.SyncResponse {
	return &remote.SyncResponse{
		Success: true,
		Data: remote.SyncData{
			Fasts:   []remote.WireFast{},
			Weights: []remote.WireWeight{},
			Water:   []remote.WireWater{},
		},
	}
}

func TestFullSync_UnauthenticatedShortCircuits(t *testing.T) {
	api := &mockAPI{syncResp: emptySyncResp()}
	o := NewOrchestrator(newMockStore(), api, mockCreds(false), time.Second)

	_, err := o.FullSync(context.Background())
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if api.calls != 0 {
		t.Errorf("expected zero network calls, got %d", api.calls)
	}
}

func TestFullSync_MergesAndPersists(t *testing.T) {
	st := newMockStore()
	st.fasts = []domain.Fast{{ID: "f1", StartTime: time.UnixMilli(1000)}}
	st.weights = []domain.WeightEntry{{ID: "w1", Date: "2026-08-01", Weight: 150}}

	completed := true
	api := &mockAPI{syncResp: &remote.SyncResponse{
		Success: true,
		Data: remote.SyncData{
			Fasts: []remote.WireFast{{
				ID: "f1", StartTime: 1000, EndTime: int64Ptr(1500), Completed: &completed,
			}},
			Weights: []remote.WireWeight{{ID: "w1", Date: "2026-08-01", Weight: 148}},
			Water:   []remote.WireWater{},
		},
	}}

	o := NewOrchestrator(st, api, mockCreds(true), time.Second)
	o.now = func() time.Time { return time.UnixMilli(9000) }

	snapshot, err := o.FullSync(context.Background())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if len(snapshot.Fasts) != 1 || !snapshot.Fasts[0].Completed {
		t.Errorf("expected remote fast to win the merge, got %+v", snapshot.Fasts)
	}
	if len(snapshot.Weights) != 1 || snapshot.Weights[0].Weight != 148 {
		t.Errorf("expected remote weight to win, got %+v", snapshot.Weights)
	}

	if len(st.fasts) != 1 || !st.fasts[0].Completed {
		t.Errorf("expected merged fasts persisted, got %+v", st.fasts)
	}
	if !st.hasLastSync || !st.lastSync.Equal(time.UnixMilli(9000)) {
		t.Errorf("expected sync time recorded, got %v", st.lastSync)
	}
	if !snapshot.SyncTime.Equal(time.UnixMilli(9000)) {
		t.Errorf("expected snapshot sync time, got %v", snapshot.SyncTime)
	}
}

func TestFullSync_TransportFailureLeavesLocalUntouched(t *testing.T) {
	st := newMockStore()
	st.fasts = []domain.Fast{{ID: "f1", StartTime: time.UnixMilli(1000)}}

	api := &mockAPI{err: errors.New("network unreachable")}
	o := NewOrchestrator(st, api, mockCreds(true), time.Second)

	if _, err := o.FullSync(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(st.writes) != 0 {
		t.Errorf("expected no local writes after failed sync, got %v", st.writes)
	}
	if st.hasLastSync {
		t.Error("expected sync time to stay unset")
	}
}

func TestFullSync_LocalReadFailureAborts(t *testing.T) {
	st := newMockStore()
	st.readErr = errors.New("storage corrupted")

	api := &mockAPI{syncResp: emptySyncResp()}
	o := NewOrchestrator(st, api, mockCreds(true), time.Second)

	if _, err := o.FullSync(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if api.calls != 0 {
		t.Errorf("expected no network call after failed local read, got %d", api.calls)
	}
	if len(st.writes) != 0 {
		t.Errorf("expected no local writes, got %v", st.writes)
	}
}

func TestFullSync_ConcurrentCallRejected(t *testing.T) {
	api := &mockAPI{
		syncResp: emptySyncResp(),
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	o := NewOrchestrator(newMockStore(), api, mockCreds(true), time.Second)

	done := make(chan error, 1)
	go func() {
		_, err := o.FullSync(context.Background())
		done <- err
	}()

	<-api.entered // first sync is now mid-flight

	if _, err := o.FullSync(context.Background()); !errors.Is(err, ErrSyncInFlight) {
		t.Errorf("expected ErrSyncInFlight, got %v", err)
	}

	close(api.release)
	if err := <-done; err != nil {
		t.Errorf("first sync should have succeeded, got %v", err)
	}
}

func TestFullSync_TimestampMonotonic(t *testing.T) {
	st := newMockStore()
	st.lastSync = time.UnixMilli(5000)
	st.hasLastSync = true

	api := &mockAPI{syncResp: emptySyncResp()}
	o := NewOrchestrator(st, api, mockCreds(true), time.Second)
	o.now = func() time.Time { return time.UnixMilli(8000) }

	before, _, _ := o.LastSyncTime()

	if _, err := o.FullSync(context.Background()); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	after, ok, _ := o.LastSyncTime()
	if !ok || after.Before(before) {
		t.Errorf("expected sync time to advance: before=%v after=%v", before, after)
	}
}

func TestBestEffortPushes(t *testing.T) {
	ctx := context.Background()
	fast := domain.Fast{ID: "f1", StartTime: time.UnixMilli(1000)}

	t.Run("unauthenticated is a silent no-op", func(t *testing.T) {
		api := &mockAPI{}
		o := NewOrchestrator(newMockStore(), api, mockCreds(false), time.Second)

		if o.SyncFast(ctx, fast) {
			t.Error("expected false when unauthenticated")
		}
		if o.DeleteFastRemote(ctx, "f1") {
			t.Error("expected false when unauthenticated")
		}
		if api.calls != 0 {
			t.Errorf("expected zero network calls, got %d", api.calls)
		}
	})

	t.Run("failures are swallowed", func(t *testing.T) {
		api := &mockAPI{err: errors.New("boom")}
		o := NewOrchestrator(newMockStore(), api, mockCreds(true), time.Second)

		if o.SyncFast(ctx, fast) {
			t.Error("expected false on push failure")
		}
		if o.SyncWeight(ctx, domain.WeightEntry{ID: "w1"}) {
			t.Error("expected false on push failure")
		}
		if o.SyncProfile(ctx, domain.UserProfile{}) {
			t.Error("expected false on push failure")
		}
	})

	t.Run("successes report true", func(t *testing.T) {
		api := &mockAPI{}
		o := NewOrchestrator(newMockStore(), api, mockCreds(true), time.Second)

		if !o.SyncFast(ctx, fast) || !o.DeleteFastRemote(ctx, "f1") {
			t.Error("expected true on successful push")
		}
		if api.calls != 2 {
			t.Errorf("expected 2 network calls, got %d", api.calls)
		}
	})
}

func TestShouldSync_Throttle(t *testing.T) {
	st := newMockStore()
	api := &mockAPI{syncResp: emptySyncResp()}
	o := NewOrchestrator(st, api, mockCreds(true), time.Minute)
	o.now = func() time.Time { return time.UnixMilli(90_000) }

	if !o.ShouldSync() {
		t.Error("expected true when never synced")
	}

	st.lastSync = time.UnixMilli(60_000)
	st.hasLastSync = true
	if o.ShouldSync() {
		t.Error("expected false within the minimum interval")
	}

	st.lastSync = time.UnixMilli(30_000)
	if !o.ShouldSync() {
		t.Error("expected true past the minimum interval")
	}
}

func TestStatus_SettlesBackToIdle(t *testing.T) {
	st := newMockStore()
	api := &mockAPI{syncResp: emptySyncResp()}
	o := NewOrchestrator(st, api, mockCreds(true), time.Second)

	now := time.UnixMilli(1_000_000)
	o.now = func() time.Time { return now }

	if o.Status() != StatusIdle {
		t.Errorf("expected idle before first sync, got %s", o.Status())
	}

	if _, err := o.FullSync(context.Background()); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if o.Status() != StatusSuccess {
		t.Errorf("expected success status, got %s", o.Status())
	}

	now = now.Add(statusResetDelay + time.Second)
	if o.Status() != StatusIdle {
		t.Errorf("expected idle after display delay, got %s", o.Status())
	}
}

func TestStatus_ErrorAlsoSettles(t *testing.T) {
	api := &mockAPI{err: errors.New("boom")}
	o := NewOrchestrator(newMockStore(), api, mockCreds(true), time.Second)

	now := time.UnixMilli(1_000_000)
	o.now = func() time.Time { return now }

	o.FullSync(context.Background())
	if o.Status() != StatusError {
		t.Errorf("expected error status, got %s", o.Status())
	}

	now = now.Add(statusResetDelay)
	if o.Status() != StatusIdle {
		t.Errorf("expected idle after display delay, got %s", o.Status())
	}
}

func int64Ptr(v int64) *int64 { return &v }
