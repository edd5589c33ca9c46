package domain

import (
	"math/rand"

	"github.com/google/uuid"
)

// BoardGenerator produces boards for the three fixed layouts. All
// randomness flows through the injected source so generation is
// reproducible under a fixed seed.
type BoardGenerator struct {
	rng *rand.Rand
}

func NewBoardGenerator(rng *rand.Rand) *BoardGenerator {
	return &BoardGenerator{rng: rng}
}

// Generate builds a board of the given size: shuffled terrains laid
// over the fixed row pattern, shuffled number tokens on every
// non-desert tile, robber on the first desert.
func (g *BoardGenerator) Generate(size BoardSize) *Board {
	terrains := g.shuffledTerrains(size)
	tokens := g.shuffledTokens()

	board := &Board{
		Size:          size,
		Intersections: make(map[string]*Intersection),
	}

	robberPlaced := false
	tokenIndex := 0
	for i, pos := range boardCoordinates(size) {
		terrain := terrains[i]
		tile := &Tile{
			ID:       uuid.NewString(),
			Position: pos,
			Terrain:  terrain,
		}
		if terrain == TerrainDesert {
			if !robberPlaced {
				tile.HasRobber = true
				robberPlaced = true
			}
		} else {
			// The large board has more producing tiles than the token
			// list holds, so the list wraps.
			tile.Token = tokens[tokenIndex%len(tokens)]
			tokenIndex++
		}
		board.Tiles = append(board.Tiles, tile)

		for _, corner := range TileCorners(pos) {
			key := corner.Key()
			if _, ok := board.Intersections[key]; !ok {
				board.Intersections[key] = &Intersection{
					ID:       uuid.NewString(),
					Position: corner,
				}
			}
		}
	}

	return board
}

func (g *BoardGenerator) shuffledTerrains(size BoardSize) []TerrainType {
	counts := terrainCounts[size]
	terrains := make([]TerrainType, 0, len(boardCoordinates(size)))
	for _, terrain := range terrainOrder {
		for i := 0; i < counts[terrain]; i++ {
			terrains = append(terrains, terrain)
		}
	}
	g.rng.Shuffle(len(terrains), func(i, j int) {
		terrains[i], terrains[j] = terrains[j], terrains[i]
	})
	return terrains
}

func (g *BoardGenerator) shuffledTokens() []int {
	tokens := make([]int, len(numberTokens))
	copy(tokens, numberTokens)
	g.rng.Shuffle(len(tokens), func(i, j int) {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	})
	return tokens
}

func boardCoordinates(size BoardSize) []HexCoordinate {
	var coords []HexCoordinate
	for _, row := range rowLayouts[size] {
		for q := row.qStart; q <= row.qEnd; q++ {
			coords = append(coords, HexCoordinate{Q: q, R: row.r})
		}
	}
	return coords
}
