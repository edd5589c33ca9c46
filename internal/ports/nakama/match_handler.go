package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"github.com/MarcNoteuil/CatanDesBibis/internal/app"
	"github.com/MarcNoteuil/CatanDesBibis/internal/bot"
	"github.com/MarcNoteuil/CatanDesBibis/internal/config"
	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"
	"github.com/MarcNoteuil/CatanDesBibis/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// rng drives bot level selection and think delays. Game dice use the
// Service's own source.
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

const (
	// MatchLabelKey_OpenSeats is the label key clients query to find
	// joinable matches.
	MatchLabelKey_OpenSeats = "open"

	// maxBotFailStreak is how many consecutive ticks a bot may fail to
	// make any legal move before the match is abandoned as wedged.
	maxBotFailStreak = 5
)

// MatchLabel is the JSON document published as the Nakama match label.
type MatchLabel struct {
	Open       int    `json:"open"`
	Game       string `json:"game"`
	Phase      string `json:"phase"`
	MaxPlayers int    `json:"max_players"`
}

// MatchState holds the authoritative runtime state for the Nakama match
// handler.
type MatchState struct {
	Seats                []string `json:"seats"` // Player IDs in seat order, empty string means free
	MaxPlayers           int      `json:"max_players"`
	OwnerSeat            int      `json:"owner_seat"` // Seat index of the match owner
	Tick                 int64    `json:"tick"`
	BotsEnabled          bool     `json:"bots_enabled"`
	BotWaitUntil         int64    `json:"bot_wait_until"`          // Tick when the current bot acts
	LastSinglePlayerTick int64    `json:"last_single_player_tick"` // Tick when the auto-fill timer started
	BotFailStreak        int      `json:"bot_fail_streak"`         // Consecutive bot turns that made no progress

	Presences map[string]runtime.Presence `json:"-"` // UserId -> Presence for targeted messaging
	App       *app.Service                `json:"-"`
	Game      *app.Game                   `json:"-"` // Active game, nil while in lobby
	Manager   *app.Manager                `json:"-"`
	Ledger    ports.PointsLedger          `json:"-"`
	Bots      map[string]*bot.Agent       `json:"-"`
	BotSpecs  map[string]app.PlayerSpec   `json:"-"` // Bot player id -> spec used at game start
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	return len(ms.Seats) - ms.GetOpenSeatsCount()
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats {
		if seat == userID {
			return i
		}
	}
	return -1
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userID := seats[seatIndex]
	return userID != "" && !bot.IsBot(userID)
}

// findFirstHumanSeat returns the first seat index with a human occupant
// or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !bot.IsBot(userID) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the
// match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}
	cfg := config.GetGameConfig()

	maxPlayers := app.MaxPlayers / 2 // default table of 4
	if val, ok := params["max_players"].(float64); ok {
		maxPlayers = int(val)
	}
	if maxPlayers < app.MinPlayers {
		maxPlayers = app.MinPlayers
	}
	if maxPlayers > app.MaxPlayers {
		maxPlayers = app.MaxPlayers
	}

	botsEnabled := true
	if val, ok := params["bots"].(bool); ok {
		botsEnabled = val
	}

	store := NewNakamaGameStore(nk)
	state := &MatchState{
		Seats:       make([]string, maxPlayers),
		MaxPlayers:  maxPlayers,
		OwnerSeat:   -1,
		BotsEnabled: botsEnabled,
		Presences:   make(map[string]runtime.Presence),
		App:         app.NewService(nil, cfg),
		Manager:     app.NewManager(store),
		Ledger:      NewNakamaPointsLedger(nk),
		Bots:        make(map[string]*bot.Agent),
		BotSpecs:    make(map[string]app.PlayerSpec),
	}

	labelBytes, err := json.Marshal(mh.currentLabel(state))
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Reconnects are always allowed.
	if matchState.seatOf(presence.GetUserId()) >= 0 {
		return state, true, ""
	}

	// New players need an empty seat, or a bot to replace while the
	// game has not started.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Game == nil {
			for _, seat := range matchState.Seats {
				if bot.IsBot(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
	}

	// A running game only accepts returning players.
	if matchState.Game != nil {
		return state, false, "Game already started"
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		if matchState.seatOf(p.GetUserId()) >= 0 {
			logger.Debug("MatchJoin: User %s reconnected.", p.GetUserId())
			continue
		}

		assigned := false
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && matchState.Game == nil {
			for i, seatUserID := range matchState.Seats {
				if bot.IsBot(seatUserID) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, p.GetUserId(), i)
					delete(matchState.Bots, seatUserID)
					delete(matchState.BotSpecs, seatUserID)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat (empty or bot) was available.", p.GetUserId())
			continue
		}
	}

	// Ensure owner seat is assigned to a human player only.
	if !isHumanSeat(matchState.Seats, matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats)
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		// Seats are only freed in the lobby. During a game the seat is
		// kept so the player can reconnect to their position.
		if matchState.Game == nil {
			if i := matchState.seatOf(p.GetUserId()); i >= 0 {
				matchState.Seats[i] = ""
				logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)
			}
		}
	}

	if newOwnerSeat := findFirstHumanSeat(matchState.Seats); newOwnerSeat != matchState.OwnerSeat {
		matchState.OwnerSeat = newOwnerSeat
		if newOwnerSeat >= 0 {
			logger.Debug("MatchLeave: Owner set to human seat %d.", newOwnerSeat)
		}
	}

	// In a lobby the match dies as soon as no human remains. A running
	// game additionally requires every human to have disconnected.
	if shouldTerminateNoHumans(matchState.Seats) || (matchState.Game != nil && len(matchState.Presences) == 0) {
		logger.Info("MatchLeave: Terminating match with no humans.")
		if matchState.Game != nil {
			if err := matchState.Manager.Persist(ctx, matchState.Game); err != nil {
				logger.Error("MatchLeave: Failed to persist abandoned game: %v", err)
			}
		}
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(ctx, matchState, dispatcher, logger, msg)
		case OpGameAction:
			mh.handleGameAction(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		if wedged := mh.processBots(ctx, matchState, dispatcher, logger); wedged {
			logger.Error("MatchLoop: Bots made no progress for %d turns, abandoning match.", maxBotFailStreak)
			if matchState.Game != nil {
				if err := matchState.Manager.Remove(ctx, matchState.Game.State.ID); err != nil {
					logger.Error("MatchLoop: Failed to remove wedged game: %v", err)
				}
			}
			return nil
		}
	}

	return matchState
}

// processBots fills lobby seats and drives the current bot turn. It
// reports true when bots have failed so many times in a row that the
// match cannot make progress and should be torn down.
func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) bool {
	cfg := config.GetGameConfig()

	// 1. Auto-fill the lobby once a lone human has waited long enough.
	if state.Game == nil {
		if state.GetHumanPlayerCount() >= 1 && state.GetOpenSeatsCount() > 0 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: Open seats with humans waiting, starting auto-fill timer.")
			}

			if state.Tick-state.LastSinglePlayerTick >= int64(cfg.BotAutoFillDelayTicks) {
				added := false
				for i, seat := range state.Seats {
					if seat != "" {
						continue
					}
					level := bot.RandomLevel(rng)
					spec := bot.NewPlayerSpec(level, i)
					agent, err := bot.NewAgent(spec.ID, level, nil)
					if err != nil {
						logger.Error("processBots: Failed to create bot agent: %v", err)
						continue
					}
					state.Seats[i] = spec.ID
					state.Bots[spec.ID] = agent
					state.BotSpecs[spec.ID] = spec
					logger.Info("processBots: Added bot %s (%s) to seat %d", spec.Name, spec.ID, i)
					added = true
				}
				if added {
					mh.updateLabel(state, dispatcher, logger)
					mh.broadcastMatchState(state, dispatcher, logger)
				}
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return false
	}

	// 2. Drive the bot whose turn it is, after a short think delay.
	snapshot := state.Game.State
	if snapshot.Phase != domain.PhaseSetup && snapshot.Phase != domain.PhasePlaying {
		return false
	}
	current := snapshot.Current()
	if current == nil || !current.IsBot {
		state.BotWaitUntil = 0
		state.BotFailStreak = 0
		return false
	}

	if state.BotWaitUntil == 0 {
		delay := cfg.BotMinDelayTicks
		if cfg.BotMaxDelayTicks > cfg.BotMinDelayTicks {
			delay += rng.Intn(cfg.BotMaxDelayTicks - cfg.BotMinDelayTicks + 1)
		}
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot %s will act at tick %d (current %d)", current.ID, state.BotWaitUntil, state.Tick)
		return false
	}
	if state.Tick < state.BotWaitUntil {
		return false
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[current.ID]
	if !exists {
		var err error
		agent, err = bot.NewAgent(current.ID, current.BotLevel, nil)
		if err != nil {
			logger.Error("processBots: Failed to create fallback agent: %v", err)
			return mh.recordBotFailure(state)
		}
		state.Bots[current.ID] = agent
	}

	action, ok := agent.NextAction(snapshot)
	if !ok {
		return mh.recordBotFailure(state)
	}

	events, err := state.App.ProcessAction(state.Game, action)
	if err != nil {
		logger.Warn("processBots: Bot %s action %s rejected: %v, forcing end of turn", current.ID, action.Type, err)
		events, err = mh.forceEndTurn(state, current.ID)
		if err != nil {
			logger.Error("processBots: Bot %s could not end turn: %v", current.ID, err)
			return mh.recordBotFailure(state)
		}
	}

	state.BotFailStreak = 0
	mh.applyEvents(ctx, state, dispatcher, logger, events)
	return false
}

// recordBotFailure bumps the no-progress counter and reports whether
// the wedge threshold has been reached.
func (mh *matchHandler) recordBotFailure(state *MatchState) bool {
	state.BotFailStreak++
	return state.BotFailStreak >= maxBotFailStreak
}

// forceEndTurn ends a stuck bot's turn, rolling the dice first when the
// turn demands it.
func (mh *matchHandler) forceEndTurn(state *MatchState, playerID string) ([]app.Event, error) {
	end := app.Action{Type: app.ActionEndTurn, PlayerID: playerID}
	events, err := state.App.ProcessAction(state.Game, end)
	if !errors.Is(err, app.ErrMustRoll) {
		return events, err
	}

	roll := app.Action{Type: app.ActionRollDice, PlayerID: playerID}
	rollEvents, err := state.App.ProcessAction(state.Game, roll)
	if err != nil {
		return nil, err
	}
	endEvents, err := state.App.ProcessAction(state.Game, end)
	if err != nil {
		return rollEvents, err
	}
	return append(rollEvents, endEvents...), nil
}

// matchStatePlayer is one seat entry in the lobby snapshot.
type matchStatePlayer struct {
	UserID      string `json:"user_id"`
	Seat        int    `json:"seat"`
	DisplayName string `json:"display_name"`
	IsOwner     bool   `json:"is_owner"`
	IsBot       bool   `json:"is_bot"`
}

// matchStateSnapshot is broadcast whenever seating changes.
type matchStateSnapshot struct {
	Seats      []string           `json:"seats"`
	OwnerSeat  int                `json:"owner_seat"`
	MaxPlayers int                `json:"max_players"`
	Tick       int64              `json:"tick"`
	Players    []matchStatePlayer `json:"players"`
}

func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	var players []matchStatePlayer
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}

		displayName := userID
		if p, exists := state.Presences[userID]; exists {
			displayName = p.GetUsername()
		} else if spec, exists := state.BotSpecs[userID]; exists {
			displayName = spec.Name
		}

		players = append(players, matchStatePlayer{
			UserID:      userID,
			Seat:        i,
			DisplayName: displayName,
			IsOwner:     i == state.OwnerSeat,
			IsBot:       bot.IsBot(userID),
		})
	}

	snapshot := matchStateSnapshot{
		Seats:      state.Seats,
		OwnerSeat:  state.OwnerSeat,
		MaxPlayers: state.MaxPlayers,
		Tick:       state.Tick,
		Players:    players,
	}
	bytes, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("broadcastMatchState: Failed to marshal snapshot: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchState, bytes, nil, nil, true)
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	logger.Info("StartGame: Request received from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	if state.Game != nil {
		logger.Warn("StartGame: Game already running.")
		mh.sendError(state, dispatcher, logger, senderID, 409, "game already started")
		return
	}
	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		mh.sendError(state, dispatcher, logger, senderID, 403, "only the owner can start the game")
		return
	}

	var specs []app.PlayerSpec
	for _, userID := range state.Seats {
		if userID == "" {
			continue
		}
		if spec, exists := state.BotSpecs[userID]; exists {
			specs = append(specs, spec)
			continue
		}
		name := userID
		if p, exists := state.Presences[userID]; exists {
			name = p.GetUsername()
		}
		specs = append(specs, app.PlayerSpec{ID: userID, Name: name})
	}

	game, err := state.App.CreateGame(specs)
	if err != nil {
		logger.Error("StartGame: Failed to start game: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	state.Game = game
	state.BotWaitUntil = 0
	state.Manager.Add(game)
	if err := state.Manager.Persist(ctx, game); err != nil {
		logger.Error("StartGame: Failed to persist new game: %v", err)
	}

	mh.updateLabel(state, dispatcher, logger)

	bytes, err := json.Marshal(game.Snapshot())
	if err != nil {
		logger.Error("StartGame: Failed to marshal initial state: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpStateUpdated, bytes, nil, nil, true)

	logger.Info("StartGame: Game %s started with %d players.", game.State.ID, len(specs))
}

func (mh *matchHandler) handleGameAction(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()

	if state.Game == nil {
		logger.Warn("handleGameAction: Game not started.")
		mh.sendError(state, dispatcher, logger, senderID, 409, "game not started")
		return
	}

	action := app.Action{}
	if err := json.Unmarshal(msg.GetData(), &action); err != nil {
		logger.Error("handleGameAction: Failed to unmarshal action from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "malformed action")
		return
	}
	// The sender always acts as themselves, whatever the payload says.
	action.PlayerID = senderID

	events, err := state.App.ProcessAction(state.Game, action)
	if err != nil {
		logger.Warn("handleGameAction: User %s action %s rejected: %v", senderID, action.Type, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.applyEvents(ctx, state, dispatcher, logger, events)
}

// applyEvents broadcasts a batch of engine events and handles
// persistence plus end-of-game settlement.
func (mh *matchHandler) applyEvents(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	finished := false
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
		if ev.Kind == app.EventGameFinished {
			mh.settlePoints(ctx, state, logger, ev)
			finished = true
		}
	}

	if finished {
		gameID := state.Game.State.ID
		if err := state.Manager.Remove(ctx, gameID); err != nil {
			logger.Error("applyEvents: Failed to remove finished game %s: %v", gameID, err)
		}
		state.Game = nil
		state.BotWaitUntil = 0
		mh.updateLabel(state, dispatcher, logger)
		return
	}

	if err := state.Manager.Persist(ctx, state.Game); err != nil {
		logger.Error("applyEvents: Failed to persist game: %v", err)
	}
}

// settlePoints credits ladder points to the human players of a finished
// game.
func (mh *matchHandler) settlePoints(ctx context.Context, state *MatchState, logger runtime.Logger, ev app.Event) {
	if state.Ledger == nil {
		return
	}
	payload, ok := ev.Payload.(app.GameFinishedPayload)
	if !ok {
		logger.Error("settlePoints: Unexpected payload type for %s", ev.Kind)
		return
	}

	for _, ranking := range payload.Rankings {
		if bot.IsBot(ranking.PlayerID) {
			continue
		}
		total, err := state.Ledger.RecordResult(ctx, ranking.PlayerID, ranking.LadderPoints)
		if err != nil {
			logger.Error("settlePoints: Failed to record %d points for %s: %v", ranking.LadderPoints, ranking.PlayerID, err)
			continue
		}
		logger.Info("settlePoints: User %s earned %d points (total %d)", ranking.PlayerID, ranking.LadderPoints, total)
	}
}

// opcodeForEvent maps engine event kinds to wire opcodes.
func opcodeForEvent(kind app.EventKind) (int64, bool) {
	switch kind {
	case app.EventStateUpdated:
		return OpStateUpdated, true
	case app.EventDiceRolled:
		return OpDiceRolled, true
	case app.EventResourcesGranted:
		return OpResourcesGranted, true
	case app.EventCardsDiscarded:
		return OpCardsDiscarded, true
	case app.EventRobberMoved:
		return OpRobberMoved, true
	case app.EventCardStolen:
		return OpCardStolen, true
	case app.EventDevCardBought:
		return OpDevCardBought, true
	case app.EventDevCardPlayed:
		return OpDevCardPlayed, true
	case app.EventTradeCompleted:
		return OpTradeCompleted, true
	case app.EventTurnEnded:
		return OpTurnEnded, true
	case app.EventGameFinished:
		return OpGameFinished, true
	}
	return 0, false
}

// broadcastEvent dispatches one engine event to its recipients.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	opCode, ok := opcodeForEvent(ev.Kind)
	if !ok {
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	// Default to broadcast; targeted events go only to connected
	// recipients.
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}

		// If the intended recipients are all offline (e.g. bots), the
		// event must not leak to everyone else.
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

// gameErrorEvent is sent privately to a player whose request failed.
type gameErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// sendError sends a gameErrorEvent to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	bytes, err := json.Marshal(gameErrorEvent{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal gameErrorEvent: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(OpGameError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) currentLabel(state *MatchState) *MatchLabel {
	phase := "lobby"
	if state.Game != nil {
		phase = string(state.Game.State.Phase)
	}
	return &MatchLabel{
		Open:       state.GetOpenSeatsCount(),
		Game:       "catan",
		Phase:      phase,
		MaxPlayers: state.MaxPlayers,
	}
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	labelBytes, err := json.Marshal(mh.currentLabel(state))
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	matchState, ok := state.(*MatchState)
	if ok && matchState.Game != nil {
		if err := matchState.Manager.Persist(ctx, matchState.Game); err != nil {
			logger.Error("MatchTerminate: Failed to persist game: %v", err)
		}
	}
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
