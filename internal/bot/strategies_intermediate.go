package bot

import (
	"github.com/MarcNoteuil/CatanDesBibis/internal/app"
	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"
)

// IntermediateBot builds with clear priorities and aims the robber at
// whoever has the most to lose.
type IntermediateBot struct{}

func (b *IntermediateBot) Name() string { return "intermediate" }

func (b *IntermediateBot) CalculateMove(state *domain.GameState, p *domain.Player) app.Action {
	if state.Phase == domain.PhaseSetup {
		return setupMove(state, p)
	}
	if state.DiceRoll == 0 {
		return app.Action{Type: app.ActionRollDice, PlayerID: p.ID}
	}
	if state.RobberPending {
		if tile := bestRobberTile(state, p); tile != nil {
			return app.Action{Type: app.ActionMoveRobber, PlayerID: p.ID, TileID: tile.ID}
		}
	}

	if a := trySettlement(state, p); a != nil {
		return *a
	}
	if a := tryCity(state, p); a != nil {
		return *a
	}
	if a := tryRoad(state, p); a != nil {
		return *a
	}
	if domain.CanAfford(p, domain.CostDevCard) {
		return app.Action{Type: app.ActionBuyDevCard, PlayerID: p.ID}
	}
	return app.Action{Type: app.ActionEndTurn, PlayerID: p.ID}
}
