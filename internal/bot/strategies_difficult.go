package bot

import (
	"github.com/MarcNoteuil/CatanDesBibis/internal/app"
	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"
)

// DifficultBot plays development cards, robs the richest exposed
// opponent and prefers cities over settlements.
type DifficultBot struct{}

func (b *DifficultBot) Name() string { return "difficult" }

func (b *DifficultBot) CalculateMove(state *domain.GameState, p *domain.Player) app.Action {
	if state.Phase == domain.PhaseSetup {
		return setupMove(state, p)
	}
	if state.DiceRoll == 0 {
		return app.Action{Type: app.ActionRollDice, PlayerID: p.ID}
	}
	if state.RobberPending {
		if tile := bestRobberTile(state, p); tile != nil {
			a := app.Action{Type: app.ActionMoveRobber, PlayerID: p.ID, TileID: tile.ID}
			if victim := richestVictim(state, p, tile); victim != nil {
				a.TargetPlayerID = victim.ID
			}
			return a
		}
	}

	if a := b.tryPlayCard(state, p); a != nil {
		return *a
	}
	if a := tryCity(state, p); a != nil {
		return *a
	}
	if a := trySettlement(state, p); a != nil {
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

func (b *DifficultBot) tryPlayCard(state *domain.GameState, p *domain.Player) *app.Action {
	if len(p.DevelopmentCards) == 0 {
		return nil
	}

	// Push toward the largest army while it is still in reach.
	if p.PlayedKnights < domain.MinLargestArmy && p.HasCard(domain.CardKnight) {
		if tile := bestRobberTile(state, p); tile != nil {
			a := &app.Action{
				Type: app.ActionPlayDevCard, PlayerID: p.ID,
				Card: domain.CardKnight, TileID: tile.ID,
			}
			if victim := richestVictim(state, p, tile); victim != nil {
				a.TargetPlayerID = victim.ID
			}
			return a
		}
	}

	// Broke: monopolize the resource the bot is shortest on.
	if p.Resources.Total() < 3 && p.HasCard(domain.CardMonopoly) {
		return &app.Action{
			Type: app.ActionPlayDevCard, PlayerID: p.ID,
			Card: domain.CardMonopoly, Resource: leastHeldResource(p),
		}
	}

	return nil
}
