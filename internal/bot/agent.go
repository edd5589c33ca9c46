package bot

import (
	"math/rand"
	"time"

	"github.com/MarcNoteuil/CatanDesBibis/internal/app"
	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"
)

// Agent drives one bot seat: it owns the strategy matching the
// player's difficulty and produces actions from state snapshots.
type Agent struct {
	PlayerID string
	brain    Brain
}

// NewAgent builds an agent for the given seat. A nil rng falls back to
// a time-seeded source.
func NewAgent(playerID string, level domain.BotLevel, rng *rand.Rand) (*Agent, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	brain, err := NewBrain(level, rng)
	if err != nil {
		return nil, err
	}
	return &Agent{PlayerID: playerID, brain: brain}, nil
}

// NextAction returns the agent's next move for the current state. It
// returns false when it is not the agent's turn or the game is over.
func (a *Agent) NextAction(state *domain.GameState) (app.Action, bool) {
	if state.Phase != domain.PhaseSetup && state.Phase != domain.PhasePlaying {
		return app.Action{}, false
	}
	current := state.Current()
	if current == nil || current.ID != a.PlayerID {
		return app.Action{}, false
	}
	return a.brain.CalculateMove(state, current), true
}
