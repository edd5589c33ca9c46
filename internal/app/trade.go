package app

import "github.com/MarcNoteuil/CatanDesBibis/internal/domain"

func (s *Service) trade(g *Game, p *domain.Player, a Action) ([]Event, error) {
	state := g.State
	if state.Phase != domain.PhasePlaying {
		return nil, ErrInvalidPhase
	}
	if a.Give.Total() == 0 || a.Receive.Total() == 0 {
		return nil, ErrBadTrade
	}
	if !domain.CanAfford(p, a.Give) {
		return nil, ErrInsufficientResources
	}

	if a.TargetPlayerID != "" {
		return s.playerTrade(g, p, a)
	}
	return s.bankTrade(g, p, a)
}

func (s *Service) playerTrade(g *Game, p *domain.Player, a Action) ([]Event, error) {
	state := g.State
	target := state.PlayerByID(a.TargetPlayerID)
	if target == nil || target.ID == p.ID {
		return nil, ErrTargetNotFound
	}
	if !domain.CanAfford(target, a.Receive) {
		return nil, ErrInsufficientResources
	}

	for r, n := range a.Give {
		p.Resources[r] -= n
		target.Resources[r] += n
	}
	for r, n := range a.Receive {
		target.Resources[r] -= n
		p.Resources[r] += n
	}

	events := []Event{{
		Kind: EventTradeCompleted,
		Payload: TradeCompletedPayload{
			PlayerID:       p.ID,
			TargetPlayerID: target.ID,
			Give:           a.Give,
			Receive:        a.Receive,
		},
	}}
	return append(events, stateEvent(g)), nil
}

// bankTrade applies a ratio-checked exchange with the bank: every
// given resource must split exactly into that resource's ratio, and
// the units obtained must equal the cards received.
func (s *Service) bankTrade(g *Game, p *domain.Player, a Action) ([]Event, error) {
	state := g.State

	units := 0
	for r, n := range a.Give {
		if n == 0 {
			continue
		}
		ratio := domain.TradeRatio(state, p.ID, r)
		if n%ratio != 0 {
			return nil, ErrBadTrade
		}
		units += n / ratio
	}
	if units != a.Receive.Total() {
		return nil, ErrBadTrade
	}
	for r, n := range a.Receive {
		if state.Bank[r] < n {
			return nil, ErrBankEmpty
		}
	}

	for r, n := range a.Give {
		p.Resources[r] -= n
		state.Bank[r] += n
	}
	for r, n := range a.Receive {
		state.Bank[r] -= n
		p.Resources[r] += n
	}

	events := []Event{{
		Kind: EventTradeCompleted,
		Payload: TradeCompletedPayload{
			PlayerID: p.ID,
			Give:     a.Give,
			Receive:  a.Receive,
		},
	}}
	return append(events, stateEvent(g)), nil
}
