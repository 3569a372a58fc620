package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultLimit is the number of entries kept when no limit is configured
const DefaultLimit = 20

// Entry is one revealed path
type Entry struct {
	Path       string    `json:"path"`
	RevealedAt time.Time `json:"revealed_at"`
}

type file struct {
	Entries []Entry `json:"entries"`
}

// Manager handles loading and saving the recent-reveal list
type Manager struct {
	path         string
	limit        int
	entries      []Entry
	mu           sync.RWMutex
	dirty        bool
	saveTimer    *time.Timer
	saveDuration time.Duration
	now          func() time.Time
}

// NewManager creates a manager backed by path, keeping at most limit entries
func NewManager(path string, limit int) *Manager {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Manager{
		path:         path,
		limit:        limit,
		saveDuration: 2 * time.Second, // Debounce saves
		now:          time.Now,
	}
}

// DefaultPath returns the history file inside configDir
func DefaultPath(configDir string) string {
	if configDir == "" {
		return ".rms-history.json"
	}
	return filepath.Join(configDir, "history.json")
}

// Load loads history from disk
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			// No history yet, start fresh
			m.entries = nil
			return nil
		}
		return err
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	m.entries = f.Entries
	if len(m.entries) > m.limit {
		m.entries = m.entries[:m.limit]
	}
	return nil
}

// Save saves history to disk immediately
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saveLocked()
}

// saveLocked saves without acquiring the lock (caller must hold lock)
func (m *Manager) saveLocked() error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(file{Entries: m.entries}, "", "  ")
	if err != nil {
		return err
	}

	m.dirty = false
	return os.WriteFile(m.path, data, 0644)
}

// Entries returns a copy of the history, most recent first
func (m *Manager) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Entry(nil), m.entries...)
}

// Paths returns the recorded paths, most recent first
func (m *Manager) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, len(m.entries))
	for i, e := range m.entries {
		paths[i] = e.Path
	}
	return paths
}

// Add moves path to the front and schedules a debounced save
func (m *Manager) Add(path string) {
	if path == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]Entry, 0, len(m.entries)+1)
	entries = append(entries, Entry{Path: path, RevealedAt: m.now()})
	for _, e := range m.entries {
		if e.Path != path {
			entries = append(entries, e)
		}
	}
	if len(entries) > m.limit {
		entries = entries[:m.limit]
	}
	m.entries = entries
	m.dirty = true

	// Cancel any pending save timer
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.saveDuration, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.dirty {
			_ = m.saveLocked() // Ignore errors for background save
		}
	})
}

// Close ensures any pending saves are written
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}

	if m.dirty {
		return m.saveLocked()
	}
	return nil
}
