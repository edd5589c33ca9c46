package bot

import (
	"github.com/MarcNoteuil/CatanDesBibis/internal/app"
	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"
)

// Brain is the interface that all bot strategies must implement. It
// inspects a state snapshot and returns the next action for the given
// player; actions go through the same engine entry point as human ones.
type Brain interface {
	Name() string
	CalculateMove(state *domain.GameState, player *domain.Player) app.Action
}
