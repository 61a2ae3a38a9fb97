package model

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"mediabox/backend/common"
)

// jsonStore holds one singleton config record backed by a whole-file JSON
// overwrite. Loads fabricate a default when the file is absent or corrupt,
// and updates only commit to memory after the flush to disk succeeds, so
// the cached value never runs ahead of the file.
type jsonStore[T any] struct {
	mu       sync.RWMutex
	path     string
	value    T
	defaults func() T
}

func newJSONStore[T any](path string, defaults func() T) *jsonStore[T] {
	return &jsonStore[T]{path: path, defaults: defaults}
}

func (s *jsonStore[T]) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err == nil {
		var v T
		if json.Unmarshal(data, &v) == nil {
			s.value = v
			return nil
		}
		common.SysError("corrupt config file " + s.path + ", recreating with defaults")
	}

	s.value = s.defaults()
	if err := writeJSONFile(s.path, s.value); err != nil {
		return err
	}
	common.SysLog("created default config file " + s.path)
	return nil
}

func (s *jsonStore[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Update mutates a copy, flushes it, then commits. A failed flush leaves
// the in-memory value untouched.
func (s *jsonStore[T]) Update(mutate func(*T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.value
	mutate(&next)
	if err := writeJSONFile(s.path, next); err != nil {
		return err
	}
	s.value = next
	return nil
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

var (
	adminStore        *jsonStore[AdminConfig]
	settingsStore     *jsonStore[Settings]
	announcementStore *jsonStore[Announcement]
)

// InitStores loads the three singleton config files from dataDir, creating
// the directory and any missing file on the way.
func InitStores(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	adminStore = newJSONStore(filepath.Join(dataDir, "admin-config.json"), defaultAdminConfig)
	settingsStore = newJSONStore(filepath.Join(dataDir, "settings.json"), defaultSettings)
	announcementStore = newJSONStore(filepath.Join(dataDir, "announcement.json"), defaultAnnouncement)

	for _, load := range []func() error{
		adminStore.load,
		settingsStore.load,
		announcementStore.load,
	} {
		if err := load(); err != nil {
			return err
		}
	}
	return nil
}
