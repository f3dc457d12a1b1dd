// Package sync coordinates full sync cycles and best-effort single-entity
// pushes between the local store and the remote authoritative store.
package sync

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"fastlane-sync/internal/convert"
	"fastlane-sync/internal/domain"
	"fastlane-sync/internal/merge"
	"fastlane-sync/internal/remote"
	"fastlane-sync/internal/store"
)

// Credentials answers the pre-flight authentication check.
type Credentials interface {
	Authenticated() bool
}

// Status is the UI-facing state of the orchestrator. Success and error
// settle back to idle after a fixed display delay.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSyncing Status = "syncing"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const (
	defaultMinSyncInterval = 30 * time.Second
	statusResetDelay       = 3 * time.Second
)

type Orchestrator struct {
	store store.Store
	api   remote.API
	creds Credentials

	minInterval time.Duration
	now         func() time.Time

	// mu makes concurrent FullSync calls an explicit ErrSyncInFlight
	// instead of a race. Best-effort pushes deliberately do not take it.
	mu sync.Mutex

	statusMu  sync.Mutex
	status    Status
	settledAt time.Time
}

func NewOrchestrator(st store.Store, api remote.API, creds Credentials, minInterval time.Duration) *Orchestrator {
	if minInterval <= 0 {
		minInterval = defaultMinSyncInterval
	}
	return &Orchestrator{
		store:       st,
		api:         api,
		creds:       creds,
		minInterval: minInterval,
		now:         time.Now,
		status:      StatusIdle,
	}
}

type localState struct {
	fasts   []domain.Fast
	weights []domain.WeightEntry
	water   []domain.WaterEntry
	profile *domain.UserProfile
}

// FullSync runs one complete cycle: read local state, push it to the
// remote, merge the remote's authoritative reply against the local
// snapshot, persist the result, and record the sync time. A failure at any
// point before the write-back leaves local state untouched. The returned
// snapshot lets callers refresh in-memory views without a second read.
func (o *Orchestrator) FullSync(ctx context.Context) (*domain.Snapshot, error) {
	if !o.creds.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	if !o.mu.TryLock() {
		return nil, ErrSyncInFlight
	}
	defer o.mu.Unlock()

	o.setStatus(StatusSyncing)

	local, err := o.readLocal(ctx)
	if err != nil {
		o.setStatus(StatusError)
		return nil, fmt.Errorf("failed to read local state: %w", err)
	}

	req := &remote.SyncRequest{
		Fasts:   convert.FastsToWire(local.fasts),
		Weights: convert.WeightsToWire(local.weights),
		Water:   convert.WaterLogToWire(local.water),
	}
	if local.profile != nil {
		wp := convert.ProfileToWire(*local.profile)
		req.Profile = &wp
	}

	resp, err := o.api.SyncAll(ctx, req)
	if err != nil {
		o.setStatus(StatusError)
		return nil, err
	}

	var localProfile domain.UserProfile
	if local.profile != nil {
		localProfile = *local.profile
	}

	mergedFasts := merge.Fasts(local.fasts, convert.FastsFromWire(resp.Data.Fasts))
	mergedWeights := merge.Weights(local.weights, convert.WeightsFromWire(resp.Data.Weights))
	mergedWater := merge.Water(local.water, convert.WaterLogFromWire(resp.Data.Water))
	mergedProfile := merge.Profile(localProfile, convert.ProfileFromWire(resp.Data.Profile))

	// Write-back is sequential: a concurrent reader sees either the old
	// collection or the new one, never an interleaving. The group is not
	// atomic — a crash between writes is recovered by the next sync,
	// since merges are idempotent over their own output.
	if err := o.store.WriteFasts(mergedFasts); err != nil {
		o.setStatus(StatusError)
		return nil, fmt.Errorf("failed to persist fasts: %w", err)
	}
	if err := o.store.WriteWeights(mergedWeights); err != nil {
		o.setStatus(StatusError)
		return nil, fmt.Errorf("failed to persist weights: %w", err)
	}
	if err := o.store.WriteWater(mergedWater); err != nil {
		o.setStatus(StatusError)
		return nil, fmt.Errorf("failed to persist water log: %w", err)
	}
	if err := o.store.WriteProfile(&mergedProfile); err != nil {
		o.setStatus(StatusError)
		return nil, fmt.Errorf("failed to persist profile: %w", err)
	}

	syncTime := o.now()
	if err := o.store.SetLastSyncTime(syncTime); err != nil {
		o.setStatus(StatusError)
		return nil, fmt.Errorf("failed to record sync time: %w", err)
	}

	o.setStatus(StatusSuccess)

	return &domain.Snapshot{
		Fasts:    mergedFasts,
		Weights:  mergedWeights,
		Water:    mergedWater,
		Profile:  mergedProfile,
		SyncTime: syncTime,
	}, nil
}

// readLocal loads all collections in parallel; the first failure aborts
// the whole read. There is no partial-read success state.
func (o *Orchestrator) readLocal(ctx context.Context) (*localState, error) {
	var ls localState
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		ls.fasts, err = o.store.ReadFasts()
		return err
	})
	g.Go(func() error {
		var err error
		ls.weights, err = o.store.ReadWeights()
		return err
	})
	g.Go(func() error {
		var err error
		ls.water, err = o.store.ReadWater()
		return err
	})
	g.Go(func() error {
		var err error
		ls.profile, err = o.store.ReadProfile()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ls, nil
}

// SyncFast pushes a single fast right after a local mutation. Failures are
// logged and swallowed; the next full sync reconciles any drift.
func (o *Orchestrator) SyncFast(ctx context.Context, fast domain.Fast) bool {
	if err := o.pushFast(ctx, fast); err != nil {
		log.Printf("best-effort fast push failed: %v", err)
		return false
	}
	return true
}

// DeleteFastRemote notifies the remote of a local deletion, best-effort.
// Deletion is a point-in-time removal, not a tombstone; see DESIGN.md.
func (o *Orchestrator) DeleteFastRemote(ctx context.Context, id string) bool {
	if err := o.deleteFast(ctx, id); err != nil {
		log.Printf("best-effort fast delete failed: %v", err)
		return false
	}
	return true
}

func (o *Orchestrator) SyncWeight(ctx context.Context, entry domain.WeightEntry) bool {
	if err := o.pushWeight(ctx, entry); err != nil {
		log.Printf("best-effort weight push failed: %v", err)
		return false
	}
	return true
}

func (o *Orchestrator) SyncProfile(ctx context.Context, profile domain.UserProfile) bool {
	if err := o.pushProfile(ctx, profile); err != nil {
		log.Printf("best-effort profile push failed: %v", err)
		return false
	}
	return true
}

func (o *Orchestrator) pushFast(ctx context.Context, fast domain.Fast) error {
	if !o.creds.Authenticated() {
		return ErrNotAuthenticated
	}
	return o.api.PushFast(ctx, convert.FastToWire(fast))
}

func (o *Orchestrator) deleteFast(ctx context.Context, id string) error {
	if !o.creds.Authenticated() {
		return ErrNotAuthenticated
	}
	return o.api.DeleteFast(ctx, id)
}

func (o *Orchestrator) pushWeight(ctx context.Context, entry domain.WeightEntry) error {
	if !o.creds.Authenticated() {
		return ErrNotAuthenticated
	}
	return o.api.PushWeight(ctx, convert.WeightToWire(entry))
}

func (o *Orchestrator) pushProfile(ctx context.Context, profile domain.UserProfile) error {
	if !o.creds.Authenticated() {
		return ErrNotAuthenticated
	}
	return o.api.PushProfile(ctx, convert.ProfileToWire(profile))
}

// LastSyncTime reports the recorded sync time; ok is false when this
// device has never completed a full sync.
func (o *Orchestrator) LastSyncTime() (t time.Time, ok bool, err error) {
	return o.store.LastSyncTime()
}

func (o *Orchestrator) SetLastSyncTime(t time.Time) error {
	return o.store.SetLastSyncTime(t)
}

// ShouldSync is the advisory throttle for automatic triggers such as
// app-foreground events. Mutual exclusion is handled by FullSync itself.
func (o *Orchestrator) ShouldSync() bool {
	last, ok, err := o.store.LastSyncTime()
	if err != nil || !ok {
		return true
	}
	return o.now().Sub(last) >= o.minInterval
}

func (o *Orchestrator) Status() Status {
	o.statusMu.Lock()
	defer o.statusMu.Unlock()
	if (o.status == StatusSuccess || o.status == StatusError) && o.now().Sub(o.settledAt) >= statusResetDelay {
		o.status = StatusIdle
	}
	return o.status
}

func (o *Orchestrator) setStatus(s Status) {
	o.statusMu.Lock()
	defer o.statusMu.Unlock()
	o.status = s
	if s == StatusSuccess || s == StatusError {
		o.settledAt = o.now()
	}
}
