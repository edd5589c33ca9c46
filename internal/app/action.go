package app

import "github.com/MarcNoteuil/CatanDesBibis/internal/domain"

// ActionType identifies a player action submitted to the engine.
type ActionType string

const (
	ActionPlaceSettlement ActionType = "place_settlement"
	ActionPlaceCity       ActionType = "place_city"
	ActionPlaceRoad       ActionType = "place_road"
	ActionRollDice        ActionType = "roll_dice"
	ActionMoveRobber      ActionType = "move_robber"
	ActionBuyDevCard      ActionType = "buy_development_card"
	ActionPlayDevCard     ActionType = "play_development_card"
	ActionTrade           ActionType = "trade"
	ActionEndTurn         ActionType = "end_turn"
)

// Action is one typed player action. Only the fields relevant to the
// action type are set; the rest stay zero.
type Action struct {
	Type     ActionType `json:"type"`
	PlayerID string     `json:"playerId"`

	// place_settlement / place_city
	Coordinate *domain.HexCoordinate `json:"coordinate,omitempty"`

	// place_road
	From *domain.HexCoordinate `json:"from,omitempty"`
	To   *domain.HexCoordinate `json:"to,omitempty"`

	// move_robber and knight plays
	TileID         string `json:"tileId,omitempty"`
	TargetPlayerID string `json:"targetPlayerId,omitempty"`

	// trade
	Give    domain.ResourceSet `json:"give,omitempty"`
	Receive domain.ResourceSet `json:"receive,omitempty"`

	// play_development_card
	Card      domain.DevCardType  `json:"cardType,omitempty"`
	Resources domain.ResourceSet  `json:"resources,omitempty"` // year_of_plenty
	Resource  domain.ResourceType `json:"resourceType,omitempty"` // monopoly
}
