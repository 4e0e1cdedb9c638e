package profile

import (
	"go.uber.org/zap"

	"techparts-store/internal/domain"
)

// Store persists the single serialized profile record under one fixed key.
type Store interface {
	// Load returns the stored profile. The second result is false when no
	// usable record exists; that is not an error condition.
	Load() (domain.StoreProfile, bool, error)
	// Save writes the profile, unconditionally overwriting any prior value.
	Save(profile domain.StoreProfile) error
}

// Manager holds the in-memory store profile. It starts from the compiled-in
// default and is replaced wholesale by Load when a saved record exists.
type Manager struct {
	current domain.StoreProfile
	store   Store
	logger  *zap.Logger
}

// NewManager creates a manager seeded with the default profile.
func NewManager(store Store, logger *zap.Logger) *Manager {
	return &Manager{
		current: domain.DefaultProfile(),
		store:   store,
		logger:  logger,
	}
}

// Load hydrates the profile from the settings store. A missing or unreadable
// record keeps the default in place and is never surfaced to the user.
func (m *Manager) Load() {
	stored, ok, err := m.store.Load()
	if err != nil {
		m.logger.Warn("Failed to load saved store profile, keeping defaults", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	m.current = stored
}

// Current returns the in-memory profile.
func (m *Manager) Current() domain.StoreProfile {
	return m.current
}

// Update replaces the in-memory profile without persisting it.
func (m *Manager) Update(profile domain.StoreProfile) {
	m.current = profile
}

// Save persists the current profile.
func (m *Manager) Save() error {
	return m.store.Save(m.current)
}
