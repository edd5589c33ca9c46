package app

import (
	"context"
	"sync"

	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"
	"github.com/MarcNoteuil/CatanDesBibis/internal/ports"
)

// Manager is the registry of live games. It keeps aggregates in memory
// and falls back to the store when a game is not cached, so a restarted
// process can pick games back up.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*Game
	store ports.GameStore
}

// NewManager constructs a registry backed by the given store. The
// store may be nil for purely in-memory use (tests).
func NewManager(store ports.GameStore) *Manager {
	return &Manager{
		games: make(map[string]*Game),
		store: store,
	}
}

// Add registers a freshly created game.
func (m *Manager) Add(g *Game) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.State.ID] = g
}

// Get returns the live aggregate for a game id, reloading it from the
// store on a cache miss. Returns nil when the game does not exist.
func (m *Manager) Get(ctx context.Context, gameID string) (*Game, error) {
	m.mu.RLock()
	g, ok := m.games[gameID]
	m.mu.RUnlock()
	if ok {
		return g, nil
	}
	if m.store == nil {
		return nil, nil
	}

	record, err := m.store.Load(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another caller may have restored it while we were loading.
	if g, ok := m.games[gameID]; ok {
		return g, nil
	}
	g = RestoreGame(record.State, record.Deck)
	m.games[gameID] = g
	return g, nil
}

// Persist writes the game's current snapshot to the store.
func (m *Manager) Persist(ctx context.Context, g *Game) error {
	if m.store == nil {
		return nil
	}
	g.Lock()
	record := &ports.GameRecord{State: g.Snapshot(), Deck: g.Deck.Cards()}
	g.Unlock()
	return m.store.Save(ctx, record)
}

// Remove evicts a game from memory and deletes its persisted snapshot.
func (m *Manager) Remove(ctx context.Context, gameID string) error {
	m.mu.Lock()
	delete(m.games, gameID)
	m.mu.Unlock()
	if m.store == nil {
		return nil
	}
	return m.store.Delete(ctx, gameID)
}

// Count returns the number of games held in memory.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// Snapshot returns a copy of the state for a cached game, or nil.
func (m *Manager) Snapshot(ctx context.Context, gameID string) (*domain.GameState, error) {
	g, err := m.Get(ctx, gameID)
	if err != nil || g == nil {
		return nil, err
	}
	g.Lock()
	defer g.Unlock()
	return g.Snapshot(), nil
}
