// Package store is the on-device persistence layer: one JSON document per
// collection under a data directory, plus the last-sync scalar. Pure
// storage — merge policy lives elsewhere.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"fastlane-sync/internal/domain"
)

// Collection keys. Each maps to <dir>/<key>.json; the sync timestamp is a
// bare string-encoded epoch-milliseconds scalar.
const (
	KeyFasts         = "fasts"
	KeyWeights       = "weights"
	KeyProfile       = "profile"
	KeyWater         = "water"
	KeyLastSyncStamp = "last_sync_timestamp"
)

type Store interface {
	ReadFasts() ([]domain.Fast, error)
	WriteFasts(fasts []domain.Fast) error
	ReadWeights() ([]domain.WeightEntry, error)
	WriteWeights(entries []domain.WeightEntry) error
	ReadWater() ([]domain.WaterEntry, error)
	WriteWater(entries []domain.WaterEntry) error
	ReadProfile() (*domain.UserProfile, error)
	WriteProfile(profile *domain.UserProfile) error
	LastSyncTime() (time.Time, bool, error)
	SetLastSyncTime(t time.Time) error
}

type fileStore struct {
	dir string
	mu  sync.RWMutex
}

func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) ReadFasts() ([]domain.Fast, error) {
	return readCollection[domain.Fast](s, KeyFasts)
}

func (s *fileStore) WriteFasts(fasts []domain.Fast) error {
	return writeJSON(s, KeyFasts, fasts)
}

func (s *fileStore) ReadWeights() ([]domain.WeightEntry, error) {
	return readCollection[domain.WeightEntry](s, KeyWeights)
}

func (s *fileStore) WriteWeights(entries []domain.WeightEntry) error {
	return writeJSON(s, KeyWeights, entries)
}

func (s *fileStore) ReadWater() ([]domain.WaterEntry, error) {
	return readCollection[domain.WaterEntry](s, KeyWater)
}

func (s *fileStore) WriteWater(entries []domain.WaterEntry) error {
	return writeJSON(s, KeyWater, entries)
}

// ReadProfile returns nil when no profile has been persisted yet.
func (s *fileStore) ReadProfile() (*domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(KeyProfile + ".json"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", KeyProfile, err)
	}

	var profile domain.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", KeyProfile, err)
	}
	return &profile, nil
}

func (s *fileStore) WriteProfile(profile *domain.UserProfile) error {
	return writeJSON(s, KeyProfile, profile)
}

// LastSyncTime reports the recorded sync time; the bool is false when the
// device has never completed a full sync.
func (s *fileStore) LastSyncTime() (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(KeyLastSyncStamp))
	if errors.Is(err, os.ErrNotExist) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read %s: %w", KeyLastSyncStamp, err)
	}

	millis, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("corrupt %s value %q: %w", KeyLastSyncStamp, data, err)
	}
	return time.UnixMilli(millis), true, nil
}

func (s *fileStore) SetLastSyncTime(t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeFile(KeyLastSyncStamp, []byte(strconv.FormatInt(t.UnixMilli(), 10)))
}

func readCollection[T any](s *fileStore, key string) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key + ".json"))
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var entries []T
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}

func writeJSON(s *fileStore, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeFile(key+".json", data)
}

// writeFile writes through a temp file and renames so a crash mid-write
// never leaves a truncated collection behind.
func (s *fileStore) writeFile(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

func (s *fileStore) path(name string) string {
	return filepath.Join(s.dir, name)
}
