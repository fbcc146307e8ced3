package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/melih-ucgun/warden/internal/core"
)

// Manager manages reading/writing the state file.
// It uses a Mutex for thread-safety.
type Manager struct {
	FilePath string
	Current  *State
	FS       core.FileSystem
	mu       sync.RWMutex
}

// NewManager creates a state manager and loads the existing file if there
// is one; a missing file starts an empty journal.
func NewManager(path string, fsys core.FileSystem) (*Manager, error) {
	mgr := &Manager{
		FilePath: path,
		Current:  NewState(),
		FS:       fsys,
	}

	if err := mgr.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return mgr, nil
}

// Load reads the state file from the abstract FS.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := m.FS.ReadFile(m.FilePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, m.Current)
}

// Save writes the current state to the abstract FS.
func (m *Manager) Save() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.Current.LastRun = time.Now()

	data, err := json.MarshalIndent(m.Current, "", "  ")
	if err != nil {
		return err
	}

	if err := m.FS.MkdirAll(filepath.Dir(m.FilePath), 0755); err != nil {
		return err
	}
	return m.FS.WriteFile(m.FilePath, data, 0644)
}

// AppendRun appends one run to the journal and saves. satisfied replaces
// the recorded satisfied set when non-nil.
func (m *Manager) AppendRun(run Run, satisfied []string) error {
	m.mu.Lock()
	m.Current.Runs = append(m.Current.Runs, run)
	if satisfied != nil {
		m.Current.Satisfied = satisfied
	}
	m.mu.Unlock()

	return m.Save()
}

// Runs returns a copy of the journal.
func (m *Manager) Runs() []Run {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := make([]Run, len(m.Current.Runs))
	copy(runs, m.Current.Runs)
	return runs
}
