package domain

import "sort"

// rankPoints maps finishing rank to ladder points.
var rankPoints = map[int]int{
	1: 50,
	2: 30,
	3: 20,
	4: 10,
	5: 5,
	6: 0,
	7: -5,
	8: -10,
}

// PointsForRank returns the ladder points awarded for a finishing rank.
// Ranks beyond the table score the worst entry.
func PointsForRank(rank int) int {
	if pts, ok := rankPoints[rank]; ok {
		return pts
	}
	return rankPoints[8]
}

// Ranking pairs a player with their finishing position.
type Ranking struct {
	PlayerID      string `json:"playerId"`
	Name          string `json:"name"`
	Rank          int    `json:"rank"`
	VictoryPoints int    `json:"victoryPoints"`
	LadderPoints  int    `json:"ladderPoints"`
}

// Rankings orders players by victory points descending and assigns
// ranks and ladder points. Totals at finish time decide the order;
// seat order breaks ties.
func Rankings(s *GameState) []Ranking {
	players := make([]*Player, len(s.Players))
	copy(players, s.Players)
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].VictoryPoints > players[j].VictoryPoints
	})

	out := make([]Ranking, 0, len(players))
	for i, p := range players {
		out = append(out, Ranking{
			PlayerID:      p.ID,
			Name:          p.Name,
			Rank:          i + 1,
			VictoryPoints: p.VictoryPoints,
			LadderPoints:  PointsForRank(i + 1),
		})
	}
	return out
}
