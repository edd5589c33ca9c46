package bot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MarcNoteuil/CatanDesBibis/internal/app"
	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"
)

func newBotGame(t *testing.T, n int) (*app.Service, *app.Game) {
	t.Helper()
	svc := app.NewService(rand.New(rand.NewSource(1)), nil)
	specs := make([]app.PlayerSpec, 0, n)
	for i := 0; i < n; i++ {
		specs = append(specs, app.PlayerSpec{
			ID:       string(rune('a' + i)),
			Name:     BotName(domain.BotAmateur, i),
			IsBot:    true,
			BotLevel: domain.BotAmateur,
		})
	}
	g, err := svc.CreateGame(specs)
	require.NoError(t, err)
	return svc, g
}

func allBrains(t *testing.T) []Brain {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	var brains []Brain
	for _, level := range []domain.BotLevel{domain.BotAmateur, domain.BotIntermediate, domain.BotDifficult} {
		b, err := NewBrain(level, rng)
		require.NoError(t, err)
		brains = append(brains, b)
	}
	return brains
}

func TestNewBrain(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, level := range []domain.BotLevel{domain.BotAmateur, domain.BotIntermediate, domain.BotDifficult} {
		b, err := NewBrain(level, rng)
		require.NoError(t, err)
		require.Equal(t, string(level), b.Name())
	}
	_, err := NewBrain("grandmaster", rng)
	require.Error(t, err)
}

func TestSetupMoveIsAccepted(t *testing.T) {
	for _, brain := range allBrains(t) {
		t.Run(brain.Name(), func(t *testing.T) {
			svc, g := newBotGame(t, 2)
			state := g.Snapshot()
			p := state.Current()

			a := brain.CalculateMove(state, p)
			require.Equal(t, app.ActionPlaceSettlement, a.Type)
			_, err := svc.ProcessAction(g, a)
			require.NoError(t, err)

			state = g.Snapshot()
			a = brain.CalculateMove(state, state.Current())
			require.Equal(t, app.ActionPlaceRoad, a.Type)
			_, err = svc.ProcessAction(g, a)
			require.NoError(t, err)
		})
	}
}

func TestSetupRoadLeavesRoundSettlement(t *testing.T) {
	svc, g := newBotGame(t, 2)

	// Round 1 for both seats, then the serpentine second settlement.
	var state *domain.GameState
	for i := 0; i < 5; i++ {
		state = g.Snapshot()
		a := setupMove(state, state.Current())
		_, err := svc.ProcessAction(g, a)
		require.NoError(t, err)
	}

	state = g.Snapshot()
	p := state.Current()
	require.Equal(t, 2, state.SetupSettlements[p.ID], "second settlement just placed")

	a := setupMove(state, p)
	require.Equal(t, app.ActionPlaceRoad, a.Type)
	anchor := state.LastSetupSettlement[p.ID]
	require.NotEmpty(t, anchor)
	require.True(t, a.From.Key() == anchor || a.To.Key() == anchor,
		"setup road leaves the settlement placed this round")
	_, err := svc.ProcessAction(g, a)
	require.NoError(t, err)
}

func TestBotsRollFirst(t *testing.T) {
	for _, brain := range allBrains(t) {
		t.Run(brain.Name(), func(t *testing.T) {
			_, g := newBotGame(t, 2)
			g.State.Phase = domain.PhasePlaying
			state := g.Snapshot()

			a := brain.CalculateMove(state, state.Current())
			require.Equal(t, app.ActionRollDice, a.Type)
		})
	}
}

func TestBotsMoveRobberWhenPending(t *testing.T) {
	for _, brain := range allBrains(t) {
		t.Run(brain.Name(), func(t *testing.T) {
			_, g := newBotGame(t, 2)
			g.State.Phase = domain.PhasePlaying
			g.State.DiceRoll = 7
			g.State.RobberPending = true
			state := g.Snapshot()

			a := brain.CalculateMove(state, state.Current())
			require.Equal(t, app.ActionMoveRobber, a.Type)
			require.NotEmpty(t, a.TileID)
			require.NotEqual(t, state.Board.RobberTile().ID, a.TileID)
		})
	}
}

func TestIntermediateBuysDevCardAsFallback(t *testing.T) {
	_, g := newBotGame(t, 2)
	g.State.Phase = domain.PhasePlaying
	g.State.DiceRoll = 6
	p := g.State.Players[0]
	p.Resources = domain.ResourceSet{
		domain.ResourceSheep: 1, domain.ResourceWheat: 1, domain.ResourceOre: 1,
	}

	brain := &IntermediateBot{}
	a := brain.CalculateMove(g.Snapshot(), g.Snapshot().Current())
	require.Equal(t, app.ActionBuyDevCard, a.Type)
}

func TestDifficultPlaysKnightTowardArmy(t *testing.T) {
	_, g := newBotGame(t, 2)
	g.State.Phase = domain.PhasePlaying
	g.State.DiceRoll = 6
	g.State.Players[0].DevelopmentCards = []domain.DevCardType{domain.CardKnight}

	brain := &DifficultBot{}
	state := g.Snapshot()
	a := brain.CalculateMove(state, state.Current())
	require.Equal(t, app.ActionPlayDevCard, a.Type)
	require.Equal(t, domain.CardKnight, a.Card)
	require.NotEmpty(t, a.TileID)
}

func TestDifficultMonopolyPicksScarcestResource(t *testing.T) {
	_, g := newBotGame(t, 2)
	g.State.Phase = domain.PhasePlaying
	g.State.DiceRoll = 6
	p := g.State.Players[0]
	p.PlayedKnights = domain.MinLargestArmy // knights no longer urgent
	p.DevelopmentCards = []domain.DevCardType{domain.CardMonopoly}
	p.Resources = domain.ResourceSet{domain.ResourceWood: 2}

	brain := &DifficultBot{}
	state := g.Snapshot()
	a := brain.CalculateMove(state, state.Current())
	require.Equal(t, app.ActionPlayDevCard, a.Type)
	require.Equal(t, domain.CardMonopoly, a.Card)
	require.Equal(t, domain.ResourceBrick, a.Resource,
		"zero-held resources tie, enumeration order picks brick after wood is excluded by count")
}

func TestLeastHeldResourceTieOrder(t *testing.T) {
	p := &domain.Player{Resources: domain.ResourceSet{}}
	require.Equal(t, domain.ResourceWood, leastHeldResource(p), "full tie keeps enumeration order")

	p.Resources[domain.ResourceWood] = 1
	require.Equal(t, domain.ResourceBrick, leastHeldResource(p))
}

func TestBestRobberTilePrefersExposure(t *testing.T) {
	_, g := newBotGame(t, 2)
	g.State.Phase = domain.PhasePlaying
	me := g.State.Players[0]

	var target *domain.Tile
	for _, tl := range g.State.Board.Tiles {
		if !tl.HasRobber {
			target = tl
			break
		}
	}
	corner := domain.TileCorners(target.Position)[0]
	g.State.Board.IntersectionAt(corner).Building = &domain.Building{
		Type: domain.BuildingCity, OwnerID: "b",
	}

	got := bestRobberTile(g.State, me)
	require.Equal(t, target.ID, got.ID)

	victim := richestVictim(g.State, me, got)
	require.Nil(t, victim, "empty-handed players are not worth robbing")

	g.State.Players[1].Resources[domain.ResourceWood] = 2
	victim = richestVictim(g.State, me, got)
	require.NotNil(t, victim)
	require.Equal(t, "b", victim.ID)
}

func TestAgentSkipsOutOfTurn(t *testing.T) {
	_, g := newBotGame(t, 2)
	agent, err := NewAgent("b", domain.BotAmateur, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, ok := agent.NextAction(g.Snapshot())
	require.False(t, ok, "seat b does not act on seat a's turn")

	g.State.CurrentPlayer = 1
	a, ok := agent.NextAction(g.Snapshot())
	require.True(t, ok)
	require.Equal(t, "b", a.PlayerID)

	g.State.Phase = domain.PhaseFinished
	_, ok = agent.NextAction(g.Snapshot())
	require.False(t, ok)
}
