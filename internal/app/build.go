package app

import (
	"github.com/google/uuid"

	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"
)

func stateEvent(g *Game) Event {
	return Event{Kind: EventStateUpdated, Payload: g.Snapshot()}
}

func newRoadID() string {
	return uuid.NewString()
}

func (s *Service) placeSettlement(g *Game, p *domain.Player, a Action) ([]Event, error) {
	state := g.State
	if a.Coordinate == nil {
		return nil, ErrInvalidPlacement
	}
	setup := state.Phase == domain.PhaseSetup
	if setup && state.SetupSettlements[p.ID] >= state.SetupRound {
		return nil, ErrInvalidPlacement
	}
	if !domain.CanPlaceSettlement(state, p.ID, *a.Coordinate, setup) {
		return nil, ErrInvalidPlacement
	}
	if !setup {
		if !domain.CanAfford(p, domain.CostSettlement) {
			return nil, ErrInsufficientResources
		}
		domain.Pay(p, state.Bank, domain.CostSettlement)
	}

	state.Board.IntersectionAt(*a.Coordinate).Building = &domain.Building{
		Type:    domain.BuildingSettlement,
		OwnerID: p.ID,
	}
	p.VictoryPoints += domain.PointsSettlement

	var events []Event
	if setup {
		state.SetupSettlements[p.ID]++
		if state.LastSetupSettlement == nil {
			state.LastSetupSettlement = make(map[string]string)
		}
		state.LastSetupSettlement[p.ID] = a.Coordinate.Key()
		// The second setup settlement pays out one card per adjacent
		// producing tile.
		if state.SetupSettlements[p.ID] == SetupPlacements {
			gains := make(domain.ResourceSet)
			for _, tile := range state.Board.TilesAround(*a.Coordinate) {
				res := tile.Terrain.Resource()
				if res == domain.ResourceNone {
					continue
				}
				gains[res] += domain.Grant(state.Bank, p, res, 1)
			}
			if gains.Total() > 0 {
				events = append(events, Event{
					Kind:    EventResourcesGranted,
					Payload: ResourcesGrantedPayload{Gains: map[string]domain.ResourceSet{p.ID: gains}},
				})
			}
		}
	}

	// A new settlement on an opponent's trail can change the bonus.
	domain.UpdateLongestRoad(state)

	return append(events, stateEvent(g)), nil
}

func (s *Service) placeCity(g *Game, p *domain.Player, a Action) ([]Event, error) {
	state := g.State
	if state.Phase != domain.PhasePlaying {
		return nil, ErrInvalidPhase
	}
	if a.Coordinate == nil || !domain.CanPlaceCity(state, p.ID, *a.Coordinate) {
		return nil, ErrInvalidPlacement
	}
	if !domain.CanAfford(p, domain.CostCity) {
		return nil, ErrInsufficientResources
	}
	domain.Pay(p, state.Bank, domain.CostCity)

	state.Board.IntersectionAt(*a.Coordinate).Building.Type = domain.BuildingCity
	p.VictoryPoints += domain.PointsCity - domain.PointsSettlement

	return []Event{stateEvent(g)}, nil
}

func (s *Service) placeRoad(g *Game, p *domain.Player, a Action) ([]Event, error) {
	state := g.State
	if a.From == nil || a.To == nil {
		return nil, ErrInvalidPlacement
	}
	setup := state.Phase == domain.PhaseSetup
	if setup {
		if state.SetupRoads[p.ID] >= state.SetupRound {
			return nil, ErrInvalidPlacement
		}
		// The setup road must attach to the settlement placed this round.
		anchor := state.LastSetupSettlement[p.ID]
		if anchor == "" || (a.From.Key() != anchor && a.To.Key() != anchor) {
			return nil, ErrInvalidPlacement
		}
	}
	if !domain.CanPlaceRoad(state, p.ID, *a.From, *a.To, setup) {
		return nil, ErrInvalidPlacement
	}

	free := setup || state.PendingFreeRoads > 0
	if !free {
		if !domain.CanAfford(p, domain.CostRoad) {
			return nil, ErrInsufficientResources
		}
		domain.Pay(p, state.Bank, domain.CostRoad)
	} else if !setup {
		state.PendingFreeRoads--
	}

	state.Board.Roads = append(state.Board.Roads, &domain.Road{
		ID:      newRoadID(),
		OwnerID: p.ID,
		From:    *a.From,
		To:      *a.To,
	})

	if setup {
		state.SetupRoads[p.ID]++
		if setupTurnDone(state, p.ID) {
			s.advanceTurn(state)
		}
	}

	domain.UpdateLongestRoad(state)

	return []Event{stateEvent(g)}, nil
}
