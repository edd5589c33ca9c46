package bot

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/MarcNoteuil/CatanDesBibis/internal/app"
	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"
)

// botNames pools display names per difficulty. Seats cycle through the
// pool so two bots of the same level stay distinguishable.
var botNames = map[domain.BotLevel][]string{
	domain.BotAmateur:      {"Bot Amateur 1", "Bot Amateur 2", "Bot Amateur 3"},
	domain.BotIntermediate: {"Bot Intermédiaire 1", "Bot Intermédiaire 2", "Bot Intermédiaire 3"},
	domain.BotDifficult:    {"Bot Difficile 1", "Bot Difficile 2", "Bot Difficile 3"},
}

// botIDPrefix marks player ids that belong to bot seats. Bot ids never
// collide with Nakama user ids, which are plain UUIDs.
const botIDPrefix = "bot-"

// IsBot reports whether the given player id belongs to a bot seat.
func IsBot(playerID string) bool {
	return strings.HasPrefix(playerID, botIDPrefix)
}

// BotName returns the display name for the n-th bot of a level.
func BotName(level domain.BotLevel, n int) string {
	names := botNames[level]
	if len(names) == 0 {
		names = botNames[domain.BotAmateur]
	}
	return names[n%len(names)]
}

// NewPlayerSpec builds the participant spec for a fresh bot seat.
func NewPlayerSpec(level domain.BotLevel, n int) app.PlayerSpec {
	return app.PlayerSpec{
		ID:       botIDPrefix + uuid.NewString(),
		Name:     BotName(level, n),
		IsBot:    true,
		BotLevel: level,
	}
}

// RandomLevel picks a difficulty for auto-filled seats.
func RandomLevel(rng *rand.Rand) domain.BotLevel {
	levels := []domain.BotLevel{domain.BotAmateur, domain.BotIntermediate, domain.BotDifficult}
	return levels[rng.Intn(len(levels))]
}
