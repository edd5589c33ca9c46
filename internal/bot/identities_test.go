package bot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"
)

func TestNewPlayerSpecIsBot(t *testing.T) {
	spec := NewPlayerSpec(domain.BotIntermediate, 0)
	require.True(t, spec.IsBot)
	require.Equal(t, domain.BotIntermediate, spec.BotLevel)
	require.True(t, IsBot(spec.ID))
	require.False(t, IsBot("2fd1a5a0-0000-0000-0000-000000000000"))
}

func TestBotNameCycles(t *testing.T) {
	pool := botNames[domain.BotDifficult]
	require.Equal(t, pool[0], BotName(domain.BotDifficult, 0))
	require.Equal(t, pool[1], BotName(domain.BotDifficult, 1))
	require.Equal(t, pool[0], BotName(domain.BotDifficult, len(pool)))
}

func TestRandomLevelCoversAllLevels(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[domain.BotLevel]bool{}
	for i := 0; i < 100; i++ {
		seen[RandomLevel(rng)] = true
	}
	require.Len(t, seen, 3)
}
