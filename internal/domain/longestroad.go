package domain

// LongestRoadLength returns the length of the player's longest
// continuous road: the longest trail in the player's road graph, each
// road segment used at most once. A trail is cut where an opponent's
// building sits on an intersection.
func LongestRoadLength(s *GameState, playerID string) int {
	roads := s.Board.RoadsOf(playerID)
	if len(roads) == 0 {
		return 0
	}

	best := 0
	used := make(map[string]bool, len(roads))
	var walk func(at HexCoordinate, length int)
	walk = func(at HexCoordinate, length int) {
		if length > best {
			best = length
		}
		if blockedFor(s, playerID, at) {
			return
		}
		for _, r := range roads {
			if used[r.ID] {
				continue
			}
			var next HexCoordinate
			switch at {
			case r.From:
				next = r.To
			case r.To:
				next = r.From
			default:
				continue
			}
			used[r.ID] = true
			walk(next, length+1)
			used[r.ID] = false
		}
	}

	for _, r := range roads {
		walk(r.From, 0)
		walk(r.To, 0)
	}
	return best
}

// blockedFor reports whether an opponent building sits at pos, which
// breaks the player's trail there.
func blockedFor(s *GameState, playerID string, pos HexCoordinate) bool {
	in := s.Board.IntersectionAt(pos)
	return in != nil && in.Building != nil && in.Building.OwnerID != playerID
}

// UpdateLongestRoad recomputes the longest-road bonus holder. A player
// qualifies at MinLongestRoad segments; only a strict maximum takes the
// bonus, so a tie leaves it with the current holder. Returns the new
// holder id (empty when nobody qualifies).
func UpdateLongestRoad(s *GameState) string {
	bestID := s.LongestRoadOwner
	bestLen := 0
	if holder := s.PlayerByID(bestID); holder != nil {
		bestLen = LongestRoadLength(s, bestID)
		if bestLen < MinLongestRoad {
			bestID = ""
			bestLen = 0
		}
	} else {
		bestID = ""
	}

	for _, p := range s.Players {
		if p.ID == s.LongestRoadOwner {
			continue
		}
		l := LongestRoadLength(s, p.ID)
		if l >= MinLongestRoad && l > bestLen {
			bestID = p.ID
			bestLen = l
		}
	}

	if bestID != s.LongestRoadOwner {
		if old := s.PlayerByID(s.LongestRoadOwner); old != nil {
			old.VictoryPoints -= PointsLongestRoad
		}
		if now := s.PlayerByID(bestID); now != nil {
			now.VictoryPoints += PointsLongestRoad
		}
		s.LongestRoadOwner = bestID
	}
	return s.LongestRoadOwner
}

// UpdateLargestArmy recomputes the largest-army bonus holder. A player
// qualifies at MinLargestArmy played knights; only a strict maximum
// takes the bonus, so a tie leaves it with the current holder.
func UpdateLargestArmy(s *GameState) string {
	bestID := s.LargestArmyOwner
	bestArmy := 0
	if holder := s.PlayerByID(bestID); holder != nil {
		bestArmy = holder.PlayedKnights
	} else {
		bestID = ""
	}

	for _, p := range s.Players {
		if p.ID == s.LargestArmyOwner {
			continue
		}
		if p.PlayedKnights >= MinLargestArmy && p.PlayedKnights > bestArmy {
			bestID = p.ID
			bestArmy = p.PlayedKnights
		}
	}

	if bestID != s.LargestArmyOwner {
		if old := s.PlayerByID(s.LargestArmyOwner); old != nil {
			old.VictoryPoints -= PointsLargestArmy
		}
		if now := s.PlayerByID(bestID); now != nil {
			now.VictoryPoints += PointsLargestArmy
		}
		s.LargestArmyOwner = bestID
	}
	return s.LargestArmyOwner
}
