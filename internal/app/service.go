package app

import (
	"math/rand"
	"time"

	"github.com/MarcNoteuil/CatanDesBibis/internal/config"
	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"
)

// Service contains the game use-cases operating on domain state. One
// Service instance serves all games; per-game mutable state lives in
// the Game aggregate.
type Service struct {
	rng *rand.Rand
	cfg *config.GameConfig
}

// NewService constructs a Service with the provided rng or a
// time-seeded default.
func NewService(rng *rand.Rand, cfg *config.GameConfig) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &Service{rng: rng, cfg: cfg}
}

// CreateGame builds a new game for the given participants.
func (s *Service) CreateGame(specs []PlayerSpec) (*Game, error) {
	return NewGame(s.rng, specs)
}

// ProcessAction validates and applies one action under the game lock.
// Handlers check every precondition before mutating anything, so an
// error always means the state is unchanged.
func (s *Service) ProcessAction(g *Game, action Action) ([]Event, error) {
	g.Lock()
	defer g.Unlock()

	state := g.State
	if state.Phase == domain.PhaseWaiting || state.Phase == domain.PhaseFinished {
		return nil, ErrInvalidPhase
	}
	player := state.PlayerByID(action.PlayerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	if current := state.Current(); current == nil || current.ID != action.PlayerID {
		return nil, ErrNotYourTurn
	}

	var (
		events []Event
		err    error
	)
	switch action.Type {
	case ActionPlaceSettlement:
		events, err = s.placeSettlement(g, player, action)
	case ActionPlaceCity:
		events, err = s.placeCity(g, player, action)
	case ActionPlaceRoad:
		events, err = s.placeRoad(g, player, action)
	case ActionRollDice:
		events, err = s.rollDice(g, player)
	case ActionMoveRobber:
		events, err = s.moveRobber(g, player, action)
	case ActionBuyDevCard:
		events, err = s.buyDevCard(g, player)
	case ActionPlayDevCard:
		events, err = s.playDevCard(g, player, action)
	case ActionTrade:
		events, err = s.trade(g, player, action)
	case ActionEndTurn:
		events, err = s.endTurn(g, player)
	default:
		return nil, ErrUnknownAction
	}
	if err != nil {
		return nil, err
	}

	state.UpdatedAt = time.Now().UTC()
	return events, nil
}

// WinPoints returns the configured victory point threshold.
func (s *Service) WinPoints() int {
	return s.cfg.WinPoints
}

// advanceTurn moves to the next player. During setup the order is
// serpentine: forward in round 1, backward in round 2, with the last
// player acting twice at the turnaround. Setup ends when every player
// has placed both settlements and both roads.
func (s *Service) advanceTurn(state *domain.GameState) {
	if state.Phase != domain.PhaseSetup {
		state.CurrentPlayer = (state.CurrentPlayer + 1) % len(state.Players)
		return
	}

	if state.SetupRound == 1 {
		if state.CurrentPlayer == len(state.Players)-1 {
			state.SetupRound = 2
			return
		}
		state.CurrentPlayer++
		return
	}

	if state.CurrentPlayer == 0 {
		state.Phase = domain.PhasePlaying
		return
	}
	state.CurrentPlayer--
}

// setupTurnDone reports whether the current player has finished this
// round's settlement+road pair.
func setupTurnDone(state *domain.GameState, playerID string) bool {
	return state.SetupSettlements[playerID] >= state.SetupRound &&
		state.SetupRoads[playerID] >= state.SetupRound
}
