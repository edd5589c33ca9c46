package bot

import (
	"math/rand"

	"github.com/MarcNoteuil/CatanDesBibis/internal/app"
	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"
)

// AmateurBot plays the simplest legal game: roll, shove the robber
// somewhere random, build whatever it stumbles into, end the turn.
type AmateurBot struct {
	rng *rand.Rand
}

func (b *AmateurBot) Name() string { return "amateur" }

func (b *AmateurBot) CalculateMove(state *domain.GameState, p *domain.Player) app.Action {
	if state.Phase == domain.PhaseSetup {
		return setupMove(state, p)
	}
	if state.DiceRoll == 0 {
		return app.Action{Type: app.ActionRollDice, PlayerID: p.ID}
	}
	if state.RobberPending {
		if tile := b.randomRobberTile(state); tile != nil {
			return app.Action{Type: app.ActionMoveRobber, PlayerID: p.ID, TileID: tile.ID}
		}
	}

	if a := trySettlement(state, p); a != nil {
		return *a
	}
	if a := tryRoad(state, p); a != nil {
		return *a
	}
	return app.Action{Type: app.ActionEndTurn, PlayerID: p.ID}
}

func (b *AmateurBot) randomRobberTile(state *domain.GameState) *domain.Tile {
	var candidates []*domain.Tile
	for _, t := range state.Board.Tiles {
		if !t.HasRobber {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[b.rng.Intn(len(candidates))]
}
