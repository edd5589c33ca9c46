package domain

import (
	"math/rand"
	"time"
)

// newTestState builds a playing-phase state with a seeded small board
// and n players holding empty hands.
func newTestState(n int) *GameState {
	gen := NewBoardGenerator(rand.New(rand.NewSource(1)))
	s := &GameState{
		ID:               "game-1",
		Phase:            PhasePlaying,
		Board:            gen.Generate(BoardSmall),
		Bank:             NewBank(),
		SetupSettlements: make(map[string]int),
		SetupRoads:       make(map[string]int),
		CreatedAt:        time.Unix(0, 0),
	}
	for i := 0; i < n; i++ {
		s.Players = append(s.Players, &Player{
			ID:        string(rune('a' + i)),
			Name:      "player-" + string(rune('a'+i)),
			Color:     PlayerColors[i],
			Resources: make(ResourceSet),
		})
	}
	return s
}

// placeBuilding drops a building directly onto the board, bypassing
// validation, for test fixtures.
func placeBuilding(s *GameState, playerID string, pos HexCoordinate, bt BuildingType) {
	s.Board.IntersectionAt(pos).Building = &Building{Type: bt, OwnerID: playerID}
}

// placeRoad drops a road directly onto the board for test fixtures.
func placeRoad(s *GameState, playerID string, from, to HexCoordinate) {
	s.Board.Roads = append(s.Board.Roads, &Road{
		ID:      from.Key() + "/" + to.Key(),
		OwnerID: playerID,
		From:    from,
		To:      to,
	})
}
