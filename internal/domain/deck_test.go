package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(1)))
	require.Equal(t, 25, deck.Remaining())

	counts := make(map[DevCardType]int)
	for {
		card, ok := deck.Draw()
		if !ok {
			break
		}
		counts[card]++
	}
	require.Equal(t, map[DevCardType]int{
		CardKnight:       14,
		CardVictoryPoint: 5,
		CardRoadBuilding: 2,
		CardYearOfPlenty: 2,
		CardMonopoly:     2,
	}, counts)
	require.Zero(t, deck.Remaining())

	_, ok := deck.Draw()
	require.False(t, ok, "exhausted deck must not draw")
}

func TestDeckShuffleIsSeeded(t *testing.T) {
	a := NewDeck(rand.New(rand.NewSource(9)))
	b := NewDeck(rand.New(rand.NewSource(9)))
	require.Equal(t, a.Cards(), b.Cards())
}

func TestRestoreDeck(t *testing.T) {
	orig := NewDeck(rand.New(rand.NewSource(4)))
	orig.Draw()
	orig.Draw()

	restored := RestoreDeck(orig.Cards())
	require.Equal(t, orig.Remaining(), restored.Remaining())

	want, _ := orig.Draw()
	got, _ := restored.Draw()
	require.Equal(t, want, got, "restored deck must draw in the same order")
}
