package app

import "github.com/MarcNoteuil/CatanDesBibis/internal/domain"

func (s *Service) endTurn(g *Game, p *domain.Player) ([]Event, error) {
	state := g.State
	if state.Phase != domain.PhasePlaying {
		return nil, ErrInvalidPhase
	}
	if !g.rolled {
		return nil, ErrMustRoll
	}

	// Victory is evaluated when the turn closes, over every player:
	// a bonus transfer can push a non-acting player across the
	// threshold mid-turn. The winner is the highest total among those
	// at or above the threshold.
	var winner *domain.Player
	for _, pl := range state.Players {
		if pl.VictoryPoints < s.cfg.WinPoints {
			continue
		}
		if winner == nil || pl.VictoryPoints > winner.VictoryPoints {
			winner = pl
		}
	}
	if winner != nil {
		state.Phase = domain.PhaseFinished
		state.Winner = winner.ID
		return []Event{
			{
				Kind:    EventGameFinished,
				Payload: GameFinishedPayload{WinnerID: winner.ID, Rankings: domain.Rankings(state)},
			},
			stateEvent(g),
		}, nil
	}

	state.DiceRoll = 0
	state.PendingFreeRoads = 0
	state.RobberPending = false
	state.TurnNumber++
	g.rolled = false
	g.boughtThisTurn = nil
	s.advanceTurn(state)

	events := []Event{{
		Kind: EventTurnEnded,
		Payload: TurnEndedPayload{
			PlayerID:     p.ID,
			NextPlayerID: state.Current().ID,
		},
	}}
	return append(events, stateEvent(g)), nil
}
