package session

import (
	"sync"

	"civicmap-be/models"
)

// Manager holds one coordinator per authenticated user. Coordinators are
// created lazily with the desktop default and the fallback device
// location; the client reports its real viewport and position after
// load.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Coordinator
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Coordinator)}
}

// Update runs fn against the user's coordinator under the manager lock
// and returns the resulting snapshot.
func (m *Manager) Update(userID string, fn func(*Coordinator)) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	coord, ok := m.sessions[userID]
	if !ok {
		coord = NewCoordinator(Desktop, models.DefaultLocation)
		m.sessions[userID] = coord
	}
	if fn != nil {
		fn(coord)
	}
	return coord.Snapshot()
}

// Snapshot returns the user's current state without mutating it.
func (m *Manager) Snapshot(userID string) State {
	return m.Update(userID, nil)
}

// Drop discards the user's session state, used on logout.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
}

// Sessions is the process-wide session manager.
var Sessions = NewManager()
