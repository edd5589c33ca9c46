package domain

import "math/rand"

// DevCardType identifies a development card.
type DevCardType string

const (
	CardKnight       DevCardType = "knight"
	CardVictoryPoint DevCardType = "victory_point"
	CardRoadBuilding DevCardType = "road_building"
	CardYearOfPlenty DevCardType = "year_of_plenty"
	CardMonopoly     DevCardType = "monopoly"
)

// deckComposition is the standard 25-card distribution.
var deckComposition = []struct {
	card  DevCardType
	count int
}{
	{CardKnight, 14},
	{CardVictoryPoint, 5},
	{CardRoadBuilding, 2},
	{CardYearOfPlenty, 2},
	{CardMonopoly, 2},
}

// Deck is a shuffled stack of development cards, drawn from the top.
type Deck struct {
	cards []DevCardType
}

// NewDeck returns a full shuffled development card deck.
func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]DevCardType, 0, 25)
	for _, c := range deckComposition {
		for i := 0; i < c.count; i++ {
			cards = append(cards, c.card)
		}
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// RestoreDeck rebuilds a deck from a persisted card stack.
func RestoreDeck(cards []DevCardType) *Deck {
	out := make([]DevCardType, len(cards))
	copy(out, cards)
	return &Deck{cards: out}
}

// Draw removes and returns the top card. ok is false on an empty deck.
func (d *Deck) Draw() (DevCardType, bool) {
	if len(d.cards) == 0 {
		return "", false
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

// Remaining returns the number of undrawn cards.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the undrawn stack, for persistence.
func (d *Deck) Cards() []DevCardType {
	out := make([]DevCardType, len(d.cards))
	copy(out, d.cards)
	return out
}
