package app

// Player count limits for a single game.
const (
	MinPlayers = 2
	MaxPlayers = 8
)

// SetupPlacements is how many settlements and roads each player puts
// down during the setup phase.
const SetupPlacements = 2
