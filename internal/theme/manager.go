package theme

import (
	"sync"

	"github.com/brikdesigns/brik/internal/logger"
	apperrors "github.com/brikdesigns/brik/pkg/errors"
)

// Store persists the selected theme name between runs. The settings file
// plays the role a browser's local storage plays for a web theme switcher.
type Store interface {
	LoadThemeName() (string, error)
	SaveThemeName(name string) error
}

// Manager holds the active theme and tells subscribers when it changes.
// Components never read the manager directly; callers pass the current theme
// into rendering so output stays deterministic.
type Manager struct {
	mu    sync.RWMutex
	theme Theme
	subs  []func(Theme)
	store Store
	log   *logger.Logger
}

// NewManager creates a Manager starting from the given theme.
func NewManager(initial Theme, store Store, log *logger.Logger) *Manager {
	return &Manager{
		theme: initial.Normalize(),
		store: store,
		log:   log.WithComponent("theme"),
	}
}

// Restore loads the persisted theme name from the store and activates it.
// A missing or unknown persisted name leaves the current theme in place.
func (m *Manager) Restore() error {
	if m.store == nil {
		return nil
	}
	name, err := m.store.LoadThemeName()
	if err != nil {
		return err
	}
	if name == "" {
		return nil
	}
	restored, ok := Named(name)
	if !ok {
		m.log.Warn("persisted theme is not a built-in theme, keeping current")
		return nil
	}
	m.set(restored, false)
	return nil
}

// Current returns the active theme.
func (m *Manager) Current() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// SetNamed activates a built-in theme by name and persists the choice.
func (m *Manager) SetNamed(name string) error {
	next, ok := Named(name)
	if !ok {
		return apperrors.NewValidationError("theme", "unknown theme name "+name, nil)
	}
	m.set(next, true)
	return nil
}

// Set activates the given theme and persists its name.
func (m *Manager) Set(next Theme) {
	m.set(next, true)
}

// Cycle advances to the next built-in theme in name order and returns it.
func (m *Manager) Cycle() Theme {
	names := Names()
	current := m.Current().Name
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	// Named cannot fail for a value produced by Names.
	theme, _ := Named(next)
	m.set(theme, true)
	return theme
}

// Subscribe registers a callback invoked with the new theme after every
// change. Callbacks run synchronously on the changing goroutine.
func (m *Manager) Subscribe(fn func(Theme)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

func (m *Manager) set(next Theme, persist bool) {
	next = next.Normalize()

	m.mu.Lock()
	m.theme = next
	subs := make([]func(Theme), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	if persist && m.store != nil {
		if err := m.store.SaveThemeName(next.Name); err != nil {
			m.log.Error(err, "failed to persist theme selection")
		}
	}

	for _, fn := range subs {
		fn(next)
	}
}
