package domain

import "fmt"

// HexCoordinate is an axial (q, r) coordinate. Tiles and intersections
// share the same coordinate space: each intersection sits at the axial
// position shared by the tiles that surround it.
type HexCoordinate struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Key returns the canonical "q,r" map key for the coordinate.
func (h HexCoordinate) Key() string {
	return fmt.Sprintf("%d,%d", h.Q, h.R)
}

// Add returns h translated by d.
func (h HexCoordinate) Add(d HexCoordinate) HexCoordinate {
	return HexCoordinate{Q: h.Q + d.Q, R: h.R + d.R}
}

// Distance returns the hex grid distance between two axial coordinates.
func Distance(a, b HexCoordinate) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	return (abs(dq) + abs(dq+dr) + abs(dr)) / 2
}

// Adjacent reports whether two coordinates are direct hex neighbours.
func Adjacent(a, b HexCoordinate) bool {
	return Distance(a, b) == 1
}

// cornerOffsets maps a tile coordinate to the six intersections around it.
var cornerOffsets = [6]HexCoordinate{
	{Q: 0, R: 0},
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
}

// hexDirections are the six axial unit vectors.
var hexDirections = [6]HexCoordinate{
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
	{Q: -1, R: 0},
	{Q: 0, R: -1},
	{Q: 1, R: -1},
}

// TileCorners returns the six intersection coordinates around a tile.
func TileCorners(tile HexCoordinate) []HexCoordinate {
	corners := make([]HexCoordinate, 0, 6)
	for _, off := range cornerOffsets {
		corners = append(corners, tile.Add(off))
	}
	return corners
}

// IntersectionTiles returns the six tile coordinates an intersection
// touches. Inverse of TileCorners; callers filter by tiles that exist.
func IntersectionTiles(pos HexCoordinate) []HexCoordinate {
	tiles := make([]HexCoordinate, 0, 6)
	for _, off := range cornerOffsets {
		tiles = append(tiles, HexCoordinate{Q: pos.Q - off.Q, R: pos.R - off.R})
	}
	return tiles
}

// AdjacentIntersections returns the six neighbouring intersection
// coordinates of pos. Callers filter by intersections that exist.
func AdjacentIntersections(pos HexCoordinate) []HexCoordinate {
	out := make([]HexCoordinate, 0, 6)
	for _, dir := range hexDirections {
		out = append(out, pos.Add(dir))
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
