package domain

import "time"

// Phase represents the lifecycle stage of a game.
type Phase string

const (
	// PhaseWaiting is the pre-game state where players can join.
	PhaseWaiting Phase = "waiting"
	// PhaseSetup is the initial placement phase (two settlements and
	// two roads per player, serpentine order).
	PhaseSetup Phase = "setup"
	// PhasePlaying is the main game loop.
	PhasePlaying Phase = "playing"
	// PhaseFinished is the state after a player reaches the win threshold.
	PhaseFinished Phase = "finished"
)

// ResourceType is one of the five tradable resources.
type ResourceType string

const (
	ResourceNone  ResourceType = ""
	ResourceWood  ResourceType = "wood"
	ResourceBrick ResourceType = "brick"
	ResourceSheep ResourceType = "sheep"
	ResourceWheat ResourceType = "wheat"
	ResourceOre   ResourceType = "ore"
)

// ResourceTypes lists the five resources in canonical order.
var ResourceTypes = []ResourceType{
	ResourceWood, ResourceBrick, ResourceSheep, ResourceWheat, ResourceOre,
}

// ResourceSet is a multiset of resources.
type ResourceSet map[ResourceType]int

// Total returns the number of cards in the set.
func (rs ResourceSet) Total() int {
	n := 0
	for _, c := range rs {
		n += c
	}
	return n
}

// Clone returns an independent copy.
func (rs ResourceSet) Clone() ResourceSet {
	out := make(ResourceSet, len(rs))
	for r, c := range rs {
		out[r] = c
	}
	return out
}

// BotLevel grades bot difficulty.
type BotLevel string

const (
	BotAmateur      BotLevel = "amateur"
	BotIntermediate BotLevel = "intermediate"
	BotDifficult    BotLevel = "difficult"
)

// Player holds state for a participant in the game.
type Player struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Color            string        `json:"color"`
	Resources        ResourceSet   `json:"resources"`
	DevelopmentCards []DevCardType `json:"developmentCards"`
	PlayedKnights    int           `json:"playedKnights"`
	VictoryPoints    int           `json:"victoryPoints"`
	IsBot            bool          `json:"isBot"`
	BotLevel         BotLevel      `json:"botLevel,omitempty"`
}

// HasCard reports whether the player holds the given development card.
func (p *Player) HasCard(card DevCardType) bool {
	for _, c := range p.DevelopmentCards {
		if c == card {
			return true
		}
	}
	return false
}

// RemoveCard removes one copy of the given card from the hand.
func (p *Player) RemoveCard(card DevCardType) bool {
	for i, c := range p.DevelopmentCards {
		if c == card {
			p.DevelopmentCards = append(p.DevelopmentCards[:i], p.DevelopmentCards[i+1:]...)
			return true
		}
	}
	return false
}

// GameState holds authoritative state for a game instance.
type GameState struct {
	ID            string      `json:"id"`
	Phase         Phase       `json:"phase"`
	Players       []*Player   `json:"players"`
	CurrentPlayer int         `json:"currentPlayer"` // index into Players
	Board         *Board      `json:"board"`
	Bank          ResourceSet `json:"bank"`
	DiceRoll      int         `json:"diceRoll"`   // 0 before the first roll of a turn
	TurnNumber    int         `json:"turnNumber"` // counts completed turns, starting at 1

	// Setup bookkeeping: round 1 runs forward, round 2 backward. The
	// setup road must attach to the settlement placed in the same round,
	// tracked per player in LastSetupSettlement by corner key.
	SetupRound          int               `json:"setupRound"`
	SetupSettlements    map[string]int    `json:"setupSettlements"`
	SetupRoads          map[string]int    `json:"setupRoads"`
	LastSetupSettlement map[string]string `json:"lastSetupSettlement,omitempty"`

	// RobberPending is set when a 7 was rolled and the robber has not
	// been moved yet this turn.
	RobberPending bool `json:"robberPending"`

	LongestRoadOwner string `json:"longestRoadOwner,omitempty"`
	LargestArmyOwner string `json:"largestArmyOwner,omitempty"`
	PendingFreeRoads int    `json:"pendingFreeRoads"`
	Winner           string `json:"winner,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlayerByID returns the player with the given id, or nil.
func (s *GameState) PlayerByID(id string) *Player {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Current returns the player whose turn it is.
func (s *GameState) Current() *Player {
	if s.CurrentPlayer < 0 || s.CurrentPlayer >= len(s.Players) {
		return nil
	}
	return s.Players[s.CurrentPlayer]
}

// NewBank returns the full initial bank.
func NewBank() ResourceSet {
	bank := make(ResourceSet, len(ResourceTypes))
	for _, r := range ResourceTypes {
		bank[r] = BankPerResource
	}
	return bank
}
