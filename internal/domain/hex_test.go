package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     HexCoordinate
		expected int
	}{
		{"same hex", HexCoordinate{0, 0}, HexCoordinate{0, 0}, 0},
		{"east neighbour", HexCoordinate{0, 0}, HexCoordinate{1, 0}, 1},
		{"south-east neighbour", HexCoordinate{0, 0}, HexCoordinate{0, 1}, 1},
		{"diagonal", HexCoordinate{0, 0}, HexCoordinate{1, 1}, 2},
		{"opposite corners", HexCoordinate{-2, 0}, HexCoordinate{2, 0}, 4},
		{"cancelling axes", HexCoordinate{0, 0}, HexCoordinate{2, -2}, 2},
		{"mixed sign", HexCoordinate{-1, 2}, HexCoordinate{1, -1}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Distance(tt.a, tt.b))
			require.Equal(t, tt.expected, Distance(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestAdjacentMatchesUnitDistance(t *testing.T) {
	origin := HexCoordinate{Q: 0, R: 0}
	neighbours := AdjacentIntersections(origin)
	require.Len(t, neighbours, 6)
	for _, n := range neighbours {
		require.True(t, Adjacent(origin, n), "neighbour %v must be at distance 1", n)
	}
	require.False(t, Adjacent(origin, origin))
	require.False(t, Adjacent(origin, HexCoordinate{Q: 2, R: 0}))
}

func TestTileCornersAndIntersectionTilesAreInverse(t *testing.T) {
	tile := HexCoordinate{Q: 2, R: -1}
	for _, corner := range TileCorners(tile) {
		require.Contains(t, IntersectionTiles(corner), tile,
			"corner %v must list %v among its tiles", corner, tile)
	}
}
