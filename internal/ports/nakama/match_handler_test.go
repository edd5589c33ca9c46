package nakama

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/MarcNoteuil/CatanDesBibis/internal/app"
	"github.com/MarcNoteuil/CatanDesBibis/internal/bot"
	"github.com/MarcNoteuil/CatanDesBibis/internal/config"
	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to
// satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	broadcastCount int
	labelUpdates   int
	lastOpCode     int64
	lastData       []byte
	lastRecipients []runtime.Presence
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.broadcastCount++
	md.lastOpCode = opCode
	md.lastData = append([]byte(nil), data...)
	md.lastRecipients = presences
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	return nil
}

// memLedger implements ports.PointsLedger in memory.
type memLedger struct {
	totals map[string]int
}

func (ml *memLedger) RecordResult(ctx context.Context, userID string, points int) (int, error) {
	if ml.totals == nil {
		ml.totals = make(map[string]int)
	}
	ml.totals[userID] += points
	return ml.totals[userID], nil
}

func newBotSeats(count int) []string {
	seats := make([]string, count)
	for i := 0; i < count; i++ {
		seats[i] = bot.NewPlayerSpec(domain.BotAmateur, i).ID
	}
	return seats
}

func TestFindFirstHumanSeat(t *testing.T) {
	bots := newBotSeats(2)

	tests := []struct {
		name  string
		seats []string
		want  int
	}{
		{
			name:  "FirstHumanAfterBot",
			seats: []string{bots[0], "user-1", "", ""},
			want:  1,
		},
		{
			name:  "AllBots",
			seats: []string{bots[0], bots[1], "", ""},
			want:  -1,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", ""},
			want:  -1,
		},
		{
			name:  "FirstHumanIsSeatZero",
			seats: []string{"user-1", bots[0], "user-2", ""},
			want:  0,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := findFirstHumanSeat(test.seats); got != test.want {
				t.Fatalf("findFirstHumanSeat() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestShouldTerminateNoHumans(t *testing.T) {
	bots := newBotSeats(4)

	tests := []struct {
		name  string
		seats []string
		want  bool
	}{
		{
			name:  "BotsOnly",
			seats: bots,
			want:  true,
		},
		{
			name:  "BotsAndEmpty",
			seats: []string{bots[0], "", bots[2], ""},
			want:  true,
		},
		{
			name:  "HumansPresent",
			seats: []string{bots[0], "user-1", "", ""},
			want:  false,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", ""},
			want:  true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := shouldTerminateNoHumans(test.seats); got != test.want {
				t.Fatalf("shouldTerminateNoHumans() = %t, want %t", got, test.want)
			}
		})
	}
}

func TestMatchLabel_Marshal(t *testing.T) {
	handler := &matchHandler{}

	state := &MatchState{
		Seats:      []string{"user-1", "", "", ""},
		MaxPlayers: 4,
	}
	payload, err := json.Marshal(handler.currentLabel(state))
	if err != nil {
		t.Fatalf("Failed to marshal label: %v", err)
	}
	want := `{"open":3,"game":"catan","phase":"lobby","max_players":4}`
	if string(payload) != want {
		t.Errorf("Got %s, want %s", payload, want)
	}

	svc := app.NewService(rand.New(rand.NewSource(1)), config.Default())
	game, err := svc.CreateGame([]app.PlayerSpec{
		{ID: "user-1", Name: "Alice"},
		{ID: "user-2", Name: "Bob"},
	})
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	state.Game = game
	payload, err = json.Marshal(handler.currentLabel(state))
	if err != nil {
		t.Fatalf("Failed to marshal label: %v", err)
	}
	want = `{"open":3,"game":"catan","phase":"setup","max_players":4}`
	if string(payload) != want {
		t.Errorf("Got %s, want %s", payload, want)
	}
}

func TestProcessBots_AutoFillsOpenSeats(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	delay := int64(config.Default().BotAutoFillDelayTicks)
	state := &MatchState{
		Seats:                []string{"user-1", "", "", ""},
		MaxPlayers:           4,
		BotsEnabled:          true,
		Presences:            make(map[string]runtime.Presence),
		Bots:                 make(map[string]*bot.Agent),
		BotSpecs:             make(map[string]app.PlayerSpec),
		LastSinglePlayerTick: 10,
		Tick:                 10 + delay,
	}

	handler.processBots(context.Background(), state, dispatcher, noopLogger{})

	botCount := 0
	for _, seat := range state.Seats {
		if bot.IsBot(seat) {
			botCount++
		}
	}
	if botCount != 3 {
		t.Fatalf("Expected 3 bots, got %d", botCount)
	}
	if state.GetOpenSeatsCount() != 0 {
		t.Fatalf("Expected no open seats after auto-fill, got %d", state.GetOpenSeatsCount())
	}
	if state.LastSinglePlayerTick != 0 {
		t.Fatalf("Expected auto-fill timer reset, got %d", state.LastSinglePlayerTick)
	}
	if len(state.Bots) != 3 || len(state.BotSpecs) != 3 {
		t.Fatalf("Expected 3 bot agents and specs, got %d and %d", len(state.Bots), len(state.BotSpecs))
	}
	if dispatcher.broadcastCount == 0 || dispatcher.labelUpdates == 0 {
		t.Fatalf("Expected match state broadcast and label update after auto-fill")
	}
}

func TestProcessBots_TimerNotElapsed(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := &MatchState{
		Seats:       []string{"user-1", "", "", ""},
		MaxPlayers:  4,
		BotsEnabled: true,
		Presences:   make(map[string]runtime.Presence),
		Bots:        make(map[string]*bot.Agent),
		BotSpecs:    make(map[string]app.PlayerSpec),
		Tick:        5,
	}

	handler.processBots(context.Background(), state, dispatcher, noopLogger{})

	if state.LastSinglePlayerTick != 5 {
		t.Fatalf("Expected timer to start at tick 5, got %d", state.LastSinglePlayerTick)
	}
	for _, seat := range state.Seats[1:] {
		if seat != "" {
			t.Fatalf("Expected no bots before delay elapsed, seat has %s", seat)
		}
	}
}

func TestProcessBots_PlaysBotTurn(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	svc := app.NewService(rand.New(rand.NewSource(7)), config.Default())
	specs := []app.PlayerSpec{
		bot.NewPlayerSpec(domain.BotAmateur, 0),
		bot.NewPlayerSpec(domain.BotAmateur, 1),
	}
	game, err := svc.CreateGame(specs)
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}

	state := &MatchState{
		Seats:       []string{specs[0].ID, specs[1].ID},
		MaxPlayers:  2,
		BotsEnabled: true,
		Presences:   make(map[string]runtime.Presence),
		App:         svc,
		Game:        game,
		Manager:     app.NewManager(nil),
		Bots:        make(map[string]*bot.Agent),
		BotSpecs:    make(map[string]app.PlayerSpec),
		Tick:        100,
	}
	state.Manager.Add(game)

	// First pass only arms the think delay.
	handler.processBots(context.Background(), state, dispatcher, noopLogger{})
	if state.BotWaitUntil <= state.Tick {
		t.Fatalf("Expected think delay in the future, got %d at tick %d", state.BotWaitUntil, state.Tick)
	}
	if dispatcher.broadcastCount != 0 {
		t.Fatalf("Expected no broadcast before the delay elapsed")
	}

	// Second pass at the armed tick plays the move.
	state.Tick = state.BotWaitUntil
	handler.processBots(context.Background(), state, dispatcher, noopLogger{})

	if dispatcher.broadcastCount == 0 {
		t.Fatalf("Expected events broadcast after bot move")
	}
	if got := len(game.State.Board.BuildingsOf(specs[0].ID)); got != 1 {
		t.Fatalf("Expected first setup settlement placed, got %d buildings", got)
	}
	if state.BotWaitUntil != 0 {
		t.Fatalf("Expected think delay reset after acting, got %d", state.BotWaitUntil)
	}
}

func TestProcessBots_AbandonsWedgedMatch(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	svc := app.NewService(rand.New(rand.NewSource(11)), config.Default())
	specs := []app.PlayerSpec{
		bot.NewPlayerSpec(domain.BotAmateur, 0),
		bot.NewPlayerSpec(domain.BotAmateur, 1),
	}
	game, err := svc.CreateGame(specs)
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}

	// Occupy every intersection so no setup placement is legal and the
	// bot cannot make progress.
	for _, in := range game.State.Board.Intersections {
		in.Building = &domain.Building{Type: domain.BuildingSettlement, OwnerID: "blocker"}
	}

	state := &MatchState{
		Seats:       []string{specs[0].ID, specs[1].ID},
		MaxPlayers:  2,
		BotsEnabled: true,
		Presences:   make(map[string]runtime.Presence),
		App:         svc,
		Game:        game,
		Manager:     app.NewManager(nil),
		Bots:        make(map[string]*bot.Agent),
		BotSpecs:    make(map[string]app.PlayerSpec),
		Tick:        100,
	}
	state.Manager.Add(game)

	wedged := false
	for i := 0; i < 4*maxBotFailStreak && !wedged; i++ {
		if state.BotWaitUntil > state.Tick {
			state.Tick = state.BotWaitUntil
		}
		wedged = handler.processBots(context.Background(), state, dispatcher, noopLogger{})
	}

	if !wedged {
		t.Fatalf("Expected wedged match to be flagged for abandonment")
	}
	if state.BotFailStreak < maxBotFailStreak {
		t.Fatalf("Expected fail streak of at least %d, got %d", maxBotFailStreak, state.BotFailStreak)
	}
}

func TestBroadcastEvent_SkipsOfflineRecipients(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := &MatchState{
		Presences: make(map[string]runtime.Presence),
	}

	// Targeted event whose only recipient is offline must not leak.
	handler.broadcastEvent(state, dispatcher, noopLogger{}, app.Event{
		Kind:       app.EventDevCardBought,
		Payload:    app.DevCardBoughtPayload{PlayerID: "bot-x", Card: domain.CardKnight},
		Recipients: []string{"bot-x"},
	})
	if dispatcher.broadcastCount != 0 {
		t.Fatalf("Expected targeted event to offline recipient to be dropped")
	}

	// Untargeted events broadcast to everyone.
	handler.broadcastEvent(state, dispatcher, noopLogger{}, app.Event{
		Kind:    app.EventDiceRolled,
		Payload: app.DiceRolledPayload{PlayerID: "user-1", Value: 8},
	})
	if dispatcher.broadcastCount != 1 {
		t.Fatalf("Expected broadcast, got %d calls", dispatcher.broadcastCount)
	}
	if dispatcher.lastOpCode != OpDiceRolled {
		t.Fatalf("Expected opcode %d, got %d", OpDiceRolled, dispatcher.lastOpCode)
	}
	if dispatcher.lastRecipients != nil {
		t.Fatalf("Expected nil recipients for broadcast")
	}

	payload := app.DiceRolledPayload{}
	if err := json.Unmarshal(dispatcher.lastData, &payload); err != nil {
		t.Fatalf("Failed to unmarshal payload: %v", err)
	}
	if payload.Value != 8 {
		t.Fatalf("Expected dice value 8, got %d", payload.Value)
	}
}

func TestSettlePoints_SkipsBots(t *testing.T) {
	handler := &matchHandler{}
	ledger := &memLedger{}
	botID := bot.NewPlayerSpec(domain.BotDifficult, 0).ID
	state := &MatchState{Ledger: ledger}

	handler.settlePoints(context.Background(), state, noopLogger{}, app.Event{
		Kind: app.EventGameFinished,
		Payload: app.GameFinishedPayload{
			WinnerID: "user-1",
			Rankings: []domain.Ranking{
				{PlayerID: "user-1", Rank: 1, LadderPoints: 50},
				{PlayerID: botID, Rank: 2, LadderPoints: 30},
				{PlayerID: "user-2", Rank: 3, LadderPoints: 20},
			},
		},
	})

	if got := ledger.totals["user-1"]; got != 50 {
		t.Fatalf("Expected 50 points for winner, got %d", got)
	}
	if got := ledger.totals["user-2"]; got != 20 {
		t.Fatalf("Expected 20 points for third place, got %d", got)
	}
	if _, ok := ledger.totals[botID]; ok {
		t.Fatalf("Expected no ledger entry for bot")
	}
}

func TestApplyEvents_ClearsFinishedGame(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	svc := app.NewService(rand.New(rand.NewSource(3)), config.Default())
	game, err := svc.CreateGame([]app.PlayerSpec{
		{ID: "user-1", Name: "Alice"},
		{ID: "user-2", Name: "Bob"},
	})
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}

	state := &MatchState{
		Seats:      []string{"user-1", "user-2"},
		MaxPlayers: 2,
		Presences:  make(map[string]runtime.Presence),
		App:        svc,
		Game:       game,
		Manager:    app.NewManager(nil),
		Ledger:     &memLedger{},
	}
	state.Manager.Add(game)

	handler.applyEvents(context.Background(), state, dispatcher, noopLogger{}, []app.Event{
		{
			Kind: app.EventGameFinished,
			Payload: app.GameFinishedPayload{
				WinnerID: "user-1",
				Rankings: []domain.Ranking{
					{PlayerID: "user-1", Rank: 1, LadderPoints: 50},
					{PlayerID: "user-2", Rank: 2, LadderPoints: 30},
				},
			},
		},
	})

	if state.Game != nil {
		t.Fatalf("Expected game cleared after finish")
	}
	if state.Manager.Count() != 0 {
		t.Fatalf("Expected game removed from registry, got %d", state.Manager.Count())
	}
	if dispatcher.labelUpdates != 1 {
		t.Fatalf("Expected label update back to lobby, got %d", dispatcher.labelUpdates)
	}
	if dispatcher.lastOpCode != OpGameFinished {
		t.Fatalf("Expected opcode %d, got %d", OpGameFinished, dispatcher.lastOpCode)
	}
}
