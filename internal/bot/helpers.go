package bot

import (
	"sort"

	"github.com/MarcNoteuil/CatanDesBibis/internal/app"
	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"
)

// sortedIntersections returns the board's intersections in a stable
// coordinate order so bot scans are reproducible.
func sortedIntersections(board *domain.Board) []*domain.Intersection {
	keys := make([]string, 0, len(board.Intersections))
	for k := range board.Intersections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*domain.Intersection, 0, len(keys))
	for _, k := range keys {
		out = append(out, board.Intersections[k])
	}
	return out
}

// setupMove produces the current setup placement: the round's
// settlement first, then a road attached to that settlement.
func setupMove(state *domain.GameState, p *domain.Player) app.Action {
	if state.SetupSettlements[p.ID] < state.SetupRound {
		for _, in := range sortedIntersections(state.Board) {
			if domain.CanPlaceSettlement(state, p.ID, in.Position, true) {
				return app.Action{
					Type: app.ActionPlaceSettlement, PlayerID: p.ID,
					Coordinate: &in.Position,
				}
			}
		}
	}
	if anchor, ok := state.LastSetupSettlement[p.ID]; ok {
		if in := state.Board.Intersections[anchor]; in != nil {
			for _, n := range domain.AdjacentIntersections(in.Position) {
				if domain.CanPlaceRoad(state, p.ID, in.Position, n, true) {
					from, to := in.Position, n
					return app.Action{
						Type: app.ActionPlaceRoad, PlayerID: p.ID,
						From: &from, To: &to,
					}
				}
			}
		}
	}
	// No legal placement left; hand the turn back.
	return app.Action{Type: app.ActionEndTurn, PlayerID: p.ID}
}

// trySettlement returns a settlement action at the first legal,
// affordable spot, or nil.
func trySettlement(state *domain.GameState, p *domain.Player) *app.Action {
	if !domain.CanAfford(p, domain.CostSettlement) {
		return nil
	}
	for _, in := range sortedIntersections(state.Board) {
		if domain.CanPlaceSettlement(state, p.ID, in.Position, false) {
			return &app.Action{
				Type: app.ActionPlaceSettlement, PlayerID: p.ID,
				Coordinate: &in.Position,
			}
		}
	}
	return nil
}

// tryCity upgrades the bot's first settlement if affordable.
func tryCity(state *domain.GameState, p *domain.Player) *app.Action {
	if !domain.CanAfford(p, domain.CostCity) {
		return nil
	}
	for _, in := range sortedIntersections(state.Board) {
		if domain.CanPlaceCity(state, p.ID, in.Position) {
			return &app.Action{
				Type: app.ActionPlaceCity, PlayerID: p.ID,
				Coordinate: &in.Position,
			}
		}
	}
	return nil
}

// tryRoad extends the bot's network along the first legal edge.
func tryRoad(state *domain.GameState, p *domain.Player) *app.Action {
	if state.PendingFreeRoads == 0 && !domain.CanAfford(p, domain.CostRoad) {
		return nil
	}
	seen := make(map[string]bool)
	var candidates []domain.HexCoordinate
	for _, in := range state.Board.BuildingsOf(p.ID) {
		if !seen[in.Position.Key()] {
			seen[in.Position.Key()] = true
			candidates = append(candidates, in.Position)
		}
	}
	for _, r := range state.Board.RoadsOf(p.ID) {
		for _, end := range []domain.HexCoordinate{r.From, r.To} {
			if !seen[end.Key()] {
				seen[end.Key()] = true
				candidates = append(candidates, end)
			}
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Key() < candidates[j].Key()
	})

	for _, from := range candidates {
		for _, to := range domain.AdjacentIntersections(from) {
			if domain.CanPlaceRoad(state, p.ID, from, to, false) {
				f, t := from, to
				return &app.Action{
					Type: app.ActionPlaceRoad, PlayerID: p.ID,
					From: &f, To: &t,
				}
			}
		}
	}
	return nil
}

// bestRobberTile scores candidate tiles by opponent exposure: one per
// adjacent opponent settlement, two per city. Returns the tile that
// hurts opponents most, or any robber-free tile when nothing scores.
func bestRobberTile(state *domain.GameState, p *domain.Player) *domain.Tile {
	var best *domain.Tile
	bestScore := -1
	for _, tile := range state.Board.Tiles {
		if tile.HasRobber {
			continue
		}
		score := 0
		for _, in := range state.Board.CornersOf(tile.Position) {
			if in.Building == nil || in.Building.OwnerID == p.ID {
				continue
			}
			if in.Building.Type == domain.BuildingCity {
				score += 2
			} else {
				score++
			}
		}
		if score > bestScore {
			best = tile
			bestScore = score
		}
	}
	return best
}

// richestVictim returns the opponent with the most cards among those
// with a building next to the tile, or nil when nobody can be robbed.
func richestVictim(state *domain.GameState, p *domain.Player, tile *domain.Tile) *domain.Player {
	var best *domain.Player
	for _, in := range state.Board.CornersOf(tile.Position) {
		if in.Building == nil || in.Building.OwnerID == p.ID {
			continue
		}
		owner := state.PlayerByID(in.Building.OwnerID)
		if owner == nil || owner.Resources.Total() == 0 {
			continue
		}
		if best == nil || owner.Resources.Total() > best.Resources.Total() {
			best = owner
		}
	}
	return best
}

// leastHeldResource picks the resource the player holds fewest of,
// ties broken by enumeration order.
func leastHeldResource(p *domain.Player) domain.ResourceType {
	best := domain.ResourceTypes[0]
	for _, r := range domain.ResourceTypes[1:] {
		if p.Resources[r] < p.Resources[best] {
			best = r
		}
	}
	return best
}
