package domain

// BankPerResource is the bank's initial stock of each resource.
const BankPerResource = 19

// Victory point values.
const (
	PointsSettlement  = 1
	PointsCity        = 2
	PointsLongestRoad = 2
	PointsLargestArmy = 2
	PointsVictoryCard = 1
	DefaultWinPoints  = 10
)

// Bonus thresholds.
const (
	MinLongestRoad = 5 // roads needed before the longest-road bonus applies
	MinLargestArmy = 3 // knights needed before the largest-army bonus applies
)

// MaxHandBeforeDiscard is the hand size above which a roll of 7 forces
// a discard of half the hand.
const MaxHandBeforeDiscard = 7

// Build costs.
var (
	CostSettlement = ResourceSet{ResourceWood: 1, ResourceBrick: 1, ResourceSheep: 1, ResourceWheat: 1}
	CostCity       = ResourceSet{ResourceWheat: 2, ResourceOre: 3}
	CostRoad       = ResourceSet{ResourceWood: 1, ResourceBrick: 1}
	CostDevCard    = ResourceSet{ResourceSheep: 1, ResourceWheat: 1, ResourceOre: 1}
)

// PlayerColors is the palette assigned to seats in join order.
var PlayerColors = []string{
	"#FF6B6B",
	"#4ECDC4",
	"#45B7D1",
	"#FFA07A",
	"#98D8C8",
	"#F7DC6F",
	"#BB8FCE",
	"#85C1E2",
}

// numberTokens is the classic token distribution (2-12, no 7). Boards
// with more than 18 producing tiles reuse it cyclically.
var numberTokens = []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}

// terrainCounts gives the tile composition per board size. Each
// composition sums to exactly the tile count of its row layout, so
// every bag entry lands on the board and the desert count is fixed.
var terrainCounts = map[BoardSize]map[TerrainType]int{
	BoardSmall: {
		TerrainForest: 4, TerrainHills: 3, TerrainPasture: 4,
		TerrainFields: 4, TerrainMountains: 3, TerrainDesert: 1,
	},
	BoardMedium: {
		TerrainForest: 5, TerrainHills: 4, TerrainPasture: 5,
		TerrainFields: 5, TerrainMountains: 4, TerrainDesert: 1,
	},
	BoardLarge: {
		TerrainForest: 7, TerrainHills: 7, TerrainPasture: 7,
		TerrainFields: 7, TerrainMountains: 7, TerrainDesert: 2,
	},
}

// terrainOrder fixes the iteration order when unrolling terrainCounts.
var terrainOrder = []TerrainType{
	TerrainForest, TerrainHills, TerrainPasture,
	TerrainFields, TerrainMountains, TerrainDesert,
}

type boardRow struct {
	r      int
	qStart int
	qEnd   int
}

// rowLayouts gives the exact axial rows of each board shape:
// 3-4-5-4-3, 4-5-6-5-4 and 4-5-6-7-6-5-4.
var rowLayouts = map[BoardSize][]boardRow{
	BoardSmall: {
		{r: -2, qStart: -1, qEnd: 1},
		{r: -1, qStart: -1, qEnd: 2},
		{r: 0, qStart: -2, qEnd: 2},
		{r: 1, qStart: -2, qEnd: 1},
		{r: 2, qStart: -1, qEnd: 1},
	},
	BoardMedium: {
		{r: -2, qStart: -2, qEnd: 1},
		{r: -1, qStart: -2, qEnd: 2},
		{r: 0, qStart: -3, qEnd: 2},
		{r: 1, qStart: -2, qEnd: 2},
		{r: 2, qStart: -1, qEnd: 2},
	},
	BoardLarge: {
		{r: -3, qStart: -2, qEnd: 1},
		{r: -2, qStart: -2, qEnd: 2},
		{r: -1, qStart: -3, qEnd: 2},
		{r: 0, qStart: -3, qEnd: 3},
		{r: 1, qStart: -2, qEnd: 3},
		{r: 2, qStart: -2, qEnd: 2},
		{r: 3, qStart: -1, qEnd: 2},
	},
}
