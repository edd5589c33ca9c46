package app

import "github.com/MarcNoteuil/CatanDesBibis/internal/domain"

// EventKind identifies emitted domain events for match dispatch.
type EventKind string

const (
	EventStateUpdated     EventKind = "state_updated"
	EventDiceRolled       EventKind = "dice_rolled"
	EventResourcesGranted EventKind = "resources_granted"
	EventCardsDiscarded   EventKind = "cards_discarded"
	EventRobberMoved      EventKind = "robber_moved"
	EventCardStolen       EventKind = "card_stolen"
	EventDevCardBought    EventKind = "dev_card_bought"
	EventDevCardPlayed    EventKind = "dev_card_played"
	EventTradeCompleted   EventKind = "trade_completed"
	EventTurnEnded        EventKind = "turn_ended"
	EventGameFinished     EventKind = "game_finished"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // player IDs; empty means broadcast
}

type DiceRolledPayload struct {
	PlayerID string `json:"playerId"`
	Value    int    `json:"value"`
}

type ResourcesGrantedPayload struct {
	Gains map[string]domain.ResourceSet `json:"gains"`
}

type CardsDiscardedPayload struct {
	PlayerID string             `json:"playerId"`
	Cards    domain.ResourceSet `json:"cards"`
}

type RobberMovedPayload struct {
	PlayerID string `json:"playerId"`
	TileID   string `json:"tileId"`
}

type CardStolenPayload struct {
	ThiefID  string              `json:"thiefId"`
	VictimID string              `json:"victimId"`
	Resource domain.ResourceType `json:"resource,omitempty"`
}

type DevCardBoughtPayload struct {
	PlayerID  string             `json:"playerId"`
	Card      domain.DevCardType `json:"card"`
	Remaining int                `json:"remaining"`
}

type DevCardPlayedPayload struct {
	PlayerID string             `json:"playerId"`
	Card     domain.DevCardType `json:"card"`
}

type TradeCompletedPayload struct {
	PlayerID       string             `json:"playerId"`
	TargetPlayerID string             `json:"targetPlayerId,omitempty"`
	Give           domain.ResourceSet `json:"give"`
	Receive        domain.ResourceSet `json:"receive"`
}

type TurnEndedPayload struct {
	PlayerID     string `json:"playerId"`
	NextPlayerID string `json:"nextPlayerId"`
}

type GameFinishedPayload struct {
	WinnerID string           `json:"winnerId"`
	Rankings []domain.Ranking `json:"rankings"`
}
