package domain

// TerrainType identifies what a tile produces.
type TerrainType string

const (
	TerrainForest    TerrainType = "forest"
	TerrainHills     TerrainType = "hills"
	TerrainPasture   TerrainType = "pasture"
	TerrainFields    TerrainType = "fields"
	TerrainMountains TerrainType = "mountains"
	TerrainDesert    TerrainType = "desert"
)

// Resource returns the resource a terrain yields, or ResourceNone for desert.
func (t TerrainType) Resource() ResourceType {
	switch t {
	case TerrainForest:
		return ResourceWood
	case TerrainHills:
		return ResourceBrick
	case TerrainPasture:
		return ResourceSheep
	case TerrainFields:
		return ResourceWheat
	case TerrainMountains:
		return ResourceOre
	default:
		return ResourceNone
	}
}

// BoardSize selects one of the three fixed board layouts.
type BoardSize string

const (
	BoardSmall  BoardSize = "small"  // 19 tiles, 2-4 players
	BoardMedium BoardSize = "medium" // 24 tiles, 5-6 players
	BoardLarge  BoardSize = "large"  // 37 tiles, 7-8 players
)

// BoardSizeFor returns the layout used for the given player count.
func BoardSizeFor(playerCount int) BoardSize {
	switch {
	case playerCount >= 7:
		return BoardLarge
	case playerCount >= 5:
		return BoardMedium
	default:
		return BoardSmall
	}
}

// BuildingType distinguishes settlements from cities.
type BuildingType string

const (
	BuildingSettlement BuildingType = "settlement"
	BuildingCity       BuildingType = "city"
)

// Tile is one hex of the board.
type Tile struct {
	ID        string        `json:"id"`
	Position  HexCoordinate `json:"position"`
	Terrain   TerrainType   `json:"terrain"`
	Token     int           `json:"token,omitempty"` // 0 on desert
	HasRobber bool          `json:"hasRobber"`
}

// Building occupies an intersection.
type Building struct {
	Type    BuildingType `json:"type"`
	OwnerID string       `json:"ownerId"`
}

// Port modifies the bank trade ratio for buildings on its intersection.
// A zero Resource means a generic port (any resource at Ratio:1).
type Port struct {
	Ratio    int          `json:"ratio"`
	Resource ResourceType `json:"resource,omitempty"`
}

// Intersection is a vertex of the board where buildings go.
type Intersection struct {
	ID       string        `json:"id"`
	Position HexCoordinate `json:"position"`
	Building *Building     `json:"building,omitempty"`
	Port     *Port         `json:"port,omitempty"`
}

// Road is an edge between two adjacent intersections.
type Road struct {
	ID      string        `json:"id"`
	OwnerID string        `json:"ownerId"`
	From    HexCoordinate `json:"from"`
	To      HexCoordinate `json:"to"`
}

// Board is the generated playing surface.
type Board struct {
	Size          BoardSize                `json:"size"`
	Tiles         []*Tile                  `json:"tiles"`
	Intersections map[string]*Intersection `json:"intersections"` // keyed by HexCoordinate.Key()
	Roads         []*Road                  `json:"roads"`
}

// TileAt returns the tile at pos, or nil.
func (b *Board) TileAt(pos HexCoordinate) *Tile {
	for _, t := range b.Tiles {
		if t.Position == pos {
			return t
		}
	}
	return nil
}

// RobberTile returns the tile currently holding the robber.
func (b *Board) RobberTile() *Tile {
	for _, t := range b.Tiles {
		if t.HasRobber {
			return t
		}
	}
	return nil
}

// IntersectionAt returns the intersection at pos, or nil.
func (b *Board) IntersectionAt(pos HexCoordinate) *Intersection {
	return b.Intersections[pos.Key()]
}

// TilesAround returns the existing tiles touching an intersection.
func (b *Board) TilesAround(pos HexCoordinate) []*Tile {
	var out []*Tile
	for _, tc := range IntersectionTiles(pos) {
		if t := b.TileAt(tc); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// CornersOf returns the existing intersections around a tile.
func (b *Board) CornersOf(tile HexCoordinate) []*Intersection {
	var out []*Intersection
	for _, c := range TileCorners(tile) {
		if in := b.IntersectionAt(c); in != nil {
			out = append(out, in)
		}
	}
	return out
}

// RoadBetween returns the road joining the two positions in either
// orientation, or nil.
func (b *Board) RoadBetween(a, c HexCoordinate) *Road {
	for _, r := range b.Roads {
		if (r.From == a && r.To == c) || (r.From == c && r.To == a) {
			return r
		}
	}
	return nil
}

// RoadsOf returns the player's roads.
func (b *Board) RoadsOf(playerID string) []*Road {
	var out []*Road
	for _, r := range b.Roads {
		if r.OwnerID == playerID {
			out = append(out, r)
		}
	}
	return out
}

// BuildingsOf returns the intersections carrying the player's buildings.
func (b *Board) BuildingsOf(playerID string) []*Intersection {
	var out []*Intersection
	for _, in := range b.Intersections {
		if in.Building != nil && in.Building.OwnerID == playerID {
			out = append(out, in)
		}
	}
	return out
}
