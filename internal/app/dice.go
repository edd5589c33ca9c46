package app

import "github.com/MarcNoteuil/CatanDesBibis/internal/domain"

func (s *Service) rollDice(g *Game, p *domain.Player) ([]Event, error) {
	state := g.State
	if state.Phase != domain.PhasePlaying {
		return nil, ErrInvalidPhase
	}
	if g.rolled {
		return nil, ErrAlreadyRolled
	}

	roll := s.rng.Intn(6) + s.rng.Intn(6) + 2
	state.DiceRoll = roll
	g.rolled = true

	events := []Event{{
		Kind:    EventDiceRolled,
		Payload: DiceRolledPayload{PlayerID: p.ID, Value: roll},
	}}

	if roll == 7 {
		// No distribution; the roller owes a robber move, and the
		// robbed target discards at robbery time.
		state.RobberPending = true
	} else {
		gains := domain.DistributeForRoll(state, roll)
		if len(gains) > 0 {
			events = append(events, Event{
				Kind:    EventResourcesGranted,
				Payload: ResourcesGrantedPayload{Gains: gains},
			})
		}
	}

	return append(events, stateEvent(g)), nil
}

func (s *Service) moveRobber(g *Game, p *domain.Player, a Action) ([]Event, error) {
	state := g.State
	if state.Phase != domain.PhasePlaying {
		return nil, ErrInvalidPhase
	}
	events, err := s.applyRobberMove(g, p, a.TileID, a.TargetPlayerID)
	if err != nil {
		return nil, err
	}
	return append(events, stateEvent(g)), nil
}

// applyRobberMove validates and performs a robber relocation plus the
// optional steal. Shared by move_robber and knight plays; checks
// everything before touching state.
func (s *Service) applyRobberMove(g *Game, p *domain.Player, tileID, targetID string) ([]Event, error) {
	state := g.State

	var target *domain.Tile
	for _, t := range state.Board.Tiles {
		if t.ID == tileID {
			target = t
			break
		}
	}
	if target == nil {
		return nil, ErrTargetNotFound
	}
	if target.HasRobber {
		return nil, ErrInvalidPlacement
	}

	var victim *domain.Player
	if targetID != "" {
		victim = state.PlayerByID(targetID)
		if victim == nil || victim.ID == p.ID {
			return nil, ErrTargetNotFound
		}
		adjacent := false
		for _, in := range state.Board.CornersOf(target.Position) {
			if in.Building != nil && in.Building.OwnerID == victim.ID {
				adjacent = true
				break
			}
		}
		if !adjacent {
			return nil, ErrInvalidPlacement
		}
	}

	var events []Event

	// An over-limit victim sheds half their hand before the theft.
	if victim != nil {
		discarded := domain.DiscardHalf(s.rng, victim, state.Bank)
		if discarded.Total() > 0 {
			events = append(events, Event{
				Kind:    EventCardsDiscarded,
				Payload: CardsDiscardedPayload{PlayerID: victim.ID, Cards: discarded},
			})
		}
	}

	if prev := state.Board.RobberTile(); prev != nil {
		prev.HasRobber = false
	}
	target.HasRobber = true
	state.RobberPending = false

	events = append(events, Event{
		Kind:    EventRobberMoved,
		Payload: RobberMovedPayload{PlayerID: p.ID, TileID: target.ID},
	})

	if victim != nil {
		stolen := domain.StealRandom(s.rng, victim, p)
		// Only the two involved players learn which card moved.
		events = append(events, Event{
			Kind:       EventCardStolen,
			Payload:    CardStolenPayload{ThiefID: p.ID, VictimID: victim.ID, Resource: stolen},
			Recipients: []string{p.ID, victim.ID},
		})
	}

	return events, nil
}
