package domain

// Placement validation. All checks are read-only: calling them never
// mutates state, and repeated calls on the same state agree.

// CanPlaceSettlement reports whether the player may put a settlement at
// pos. The distance rule (no building on any neighbouring intersection)
// always applies; outside setup the spot must also touch one of the
// player's roads and the player pays the cost elsewhere.
func CanPlaceSettlement(s *GameState, playerID string, pos HexCoordinate, setup bool) bool {
	in := s.Board.IntersectionAt(pos)
	if in == nil || in.Building != nil {
		return false
	}
	for _, n := range AdjacentIntersections(pos) {
		if other := s.Board.IntersectionAt(n); other != nil && other.Building != nil {
			return false
		}
	}
	if setup {
		return true
	}
	for _, r := range s.Board.RoadsOf(playerID) {
		if r.From == pos || r.To == pos {
			return true
		}
	}
	return false
}

// CanPlaceCity reports whether the player may upgrade at pos: only the
// player's own settlement qualifies.
func CanPlaceCity(s *GameState, playerID string, pos HexCoordinate) bool {
	in := s.Board.IntersectionAt(pos)
	if in == nil || in.Building == nil {
		return false
	}
	return in.Building.Type == BuildingSettlement && in.Building.OwnerID == playerID
}

// CanPlaceRoad reports whether the player may build a road between from
// and to: both intersections exist, they are direct neighbours, the
// edge is free in either orientation, and the road connects to the
// player's network (a building or another road at an endpoint). During
// setup the connection must be a building, so the road attaches to the
// settlement just placed.
func CanPlaceRoad(s *GameState, playerID string, from, to HexCoordinate, setup bool) bool {
	if s.Board.IntersectionAt(from) == nil || s.Board.IntersectionAt(to) == nil {
		return false
	}
	if !Adjacent(from, to) {
		return false
	}
	if s.Board.RoadBetween(from, to) != nil {
		return false
	}
	if hasOwnBuilding(s, playerID, from) || hasOwnBuilding(s, playerID, to) {
		return true
	}
	if setup {
		return false
	}
	for _, r := range s.Board.RoadsOf(playerID) {
		if r.From == from || r.To == from || r.From == to || r.To == to {
			return true
		}
	}
	return false
}

func hasOwnBuilding(s *GameState, playerID string, pos HexCoordinate) bool {
	in := s.Board.IntersectionAt(pos)
	return in != nil && in.Building != nil && in.Building.OwnerID == playerID
}

// TradeRatio returns the player's best bank ratio for giving the named
// resource: 4 by default, 3 with a generic port, 2 with a matching
// resource port on any of the player's buildings.
func TradeRatio(s *GameState, playerID string, give ResourceType) int {
	ratio := 4
	for _, in := range s.Board.BuildingsOf(playerID) {
		if in.Port == nil {
			continue
		}
		if in.Port.Resource == give && in.Port.Ratio < ratio {
			ratio = in.Port.Ratio
		}
		if in.Port.Resource == ResourceNone && in.Port.Ratio < ratio {
			ratio = in.Port.Ratio
		}
	}
	return ratio
}
