package app

import "github.com/MarcNoteuil/CatanDesBibis/internal/domain"

func (s *Service) buyDevCard(g *Game, p *domain.Player) ([]Event, error) {
	state := g.State
	if state.Phase != domain.PhasePlaying {
		return nil, ErrInvalidPhase
	}
	if g.Deck.Remaining() == 0 {
		return nil, ErrDeckExhausted
	}
	if !domain.CanAfford(p, domain.CostDevCard) {
		return nil, ErrInsufficientResources
	}
	domain.Pay(p, state.Bank, domain.CostDevCard)

	card, _ := g.Deck.Draw()
	p.DevelopmentCards = append(p.DevelopmentCards, card)
	g.boughtThisTurn = append(g.boughtThisTurn, card)
	if card == domain.CardVictoryPoint {
		p.VictoryPoints += domain.PointsVictoryCard
	}

	// The drawn card stays hidden from the table.
	events := []Event{{
		Kind:       EventDevCardBought,
		Payload:    DevCardBoughtPayload{PlayerID: p.ID, Card: card, Remaining: g.Deck.Remaining()},
		Recipients: []string{p.ID},
	}}
	return append(events, stateEvent(g)), nil
}

func (s *Service) playDevCard(g *Game, p *domain.Player, a Action) ([]Event, error) {
	state := g.State
	if state.Phase != domain.PhasePlaying {
		return nil, ErrInvalidPhase
	}
	if !heldBeforeThisTurn(g, p, a.Card) {
		return nil, ErrCardNotHeld
	}

	var events []Event
	switch a.Card {
	case domain.CardKnight:
		robberEvents, err := s.applyRobberMove(g, p, a.TileID, a.TargetPlayerID)
		if err != nil {
			return nil, err
		}
		p.PlayedKnights++
		domain.UpdateLargestArmy(state)
		events = robberEvents

	case domain.CardRoadBuilding:
		state.PendingFreeRoads = 2

	case domain.CardYearOfPlenty:
		if a.Resources.Total() != 2 {
			return nil, ErrBadTrade
		}
		for r, n := range a.Resources {
			if state.Bank[r] < n {
				return nil, ErrBankEmpty
			}
		}
		for r, n := range a.Resources {
			domain.Grant(state.Bank, p, r, n)
		}

	case domain.CardMonopoly:
		if a.Resource == domain.ResourceNone {
			return nil, ErrBadTrade
		}
		for _, other := range state.Players {
			if other.ID == p.ID {
				continue
			}
			n := other.Resources[a.Resource]
			other.Resources[a.Resource] = 0
			p.Resources[a.Resource] += n
		}

	default:
		// Victory point cards score passively and are never played.
		return nil, ErrUnknownAction
	}

	p.RemoveCard(a.Card)
	events = append(events, Event{
		Kind:    EventDevCardPlayed,
		Payload: DevCardPlayedPayload{PlayerID: p.ID, Card: a.Card},
	})
	return append(events, stateEvent(g)), nil
}

// heldBeforeThisTurn reports whether the player holds a copy of card
// acquired before the current turn; cards bought this turn cannot be
// played yet.
func heldBeforeThisTurn(g *Game, p *domain.Player, card domain.DevCardType) bool {
	held := 0
	for _, c := range p.DevelopmentCards {
		if c == card {
			held++
		}
	}
	for _, c := range g.boughtThisTurn {
		if c == card {
			held--
		}
	}
	return held > 0
}
