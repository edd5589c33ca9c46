package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create an
	// open lobby.
	RpcQuickMatch = "quick_match"

	// RpcCreateGame is the Nakama RPC id clients call to create a private
	// match with explicit settings.
	RpcCreateGame = "create_game"

	// MatchNameCatan is the authoritative match handler name registered
	// with Nakama.
	MatchNameCatan = "catan_match"
)

// Op codes for client messages and server events. All payloads are JSON.
const (
	// Client -> Server
	OpStartGame  int64 = 1
	OpGameAction int64 = 2

	// Server -> Client events
	OpMatchState       int64 = 101
	OpStateUpdated     int64 = 102
	OpDiceRolled       int64 = 103
	OpResourcesGranted int64 = 104
	OpCardsDiscarded   int64 = 105
	OpRobberMoved      int64 = 106
	OpCardStolen       int64 = 107
	OpDevCardBought    int64 = 108
	OpDevCardPlayed    int64 = 109
	OpTradeCompleted   int64 = 110
	OpTurnEnded        int64 = 111
	OpGameFinished     int64 = 112

	OpGameError int64 = 400
)
