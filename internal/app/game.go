package app

import (
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"
)

// PlayerSpec describes one participant at game creation.
type PlayerSpec struct {
	ID       string
	Name     string
	IsBot    bool
	BotLevel domain.BotLevel
}

// Game is the per-game aggregate: authoritative state plus the drawn
// development deck and per-turn bookkeeping. All access goes through
// the mutex so one action is processed at a time per game.
type Game struct {
	mu sync.Mutex

	State *domain.GameState
	Deck  *domain.Deck

	rolled         bool
	boughtThisTurn []domain.DevCardType
}

// NewGame builds a fresh game in the setup phase: generated board,
// full bank, shuffled deck, players seated in the given order.
func NewGame(rng *rand.Rand, specs []PlayerSpec) (*Game, error) {
	if len(specs) < MinPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(specs) > MaxPlayers {
		return nil, ErrTooManyPlayers
	}

	size := domain.BoardSizeFor(len(specs))
	board := domain.NewBoardGenerator(rng).Generate(size)

	now := time.Now().UTC()
	state := &domain.GameState{
		ID:                  uuid.NewString(),
		Phase:               domain.PhaseSetup,
		Board:               board,
		Bank:                domain.NewBank(),
		TurnNumber:          1,
		SetupRound:          1,
		SetupSettlements:    make(map[string]int),
		SetupRoads:          make(map[string]int),
		LastSetupSettlement: make(map[string]string),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	for i, spec := range specs {
		id := spec.ID
		if id == "" {
			id = uuid.NewString()
		}
		state.Players = append(state.Players, &domain.Player{
			ID:        id,
			Name:      spec.Name,
			Color:     domain.PlayerColors[i%len(domain.PlayerColors)],
			Resources: make(domain.ResourceSet),
			IsBot:     spec.IsBot,
			BotLevel:  spec.BotLevel,
		})
	}

	return &Game{State: state, Deck: domain.NewDeck(rng)}, nil
}

// RestoreGame rebuilds an aggregate from persisted state.
func RestoreGame(state *domain.GameState, deck []domain.DevCardType) *Game {
	if state.LastSetupSettlement == nil {
		state.LastSetupSettlement = make(map[string]string)
	}
	return &Game{State: state, Deck: domain.RestoreDeck(deck)}
}

// Lock acquires the per-game action lock.
func (g *Game) Lock() { g.mu.Lock() }

// Unlock releases the per-game action lock.
func (g *Game) Unlock() { g.mu.Unlock() }

// Snapshot returns a deep copy of the state, safe to hand to transport
// or persistence without exposing the live aggregate.
func (g *Game) Snapshot() *domain.GameState {
	raw, err := json.Marshal(g.State)
	if err != nil {
		return nil
	}
	var out domain.GameState
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return &out
}
