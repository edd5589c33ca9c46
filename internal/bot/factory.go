package bot

import (
	"fmt"
	"math/rand"

	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"
)

// NewBrain creates a strategy for the given difficulty level.
func NewBrain(level domain.BotLevel, rng *rand.Rand) (Brain, error) {
	switch level {
	case domain.BotAmateur:
		return &AmateurBot{rng: rng}, nil
	case domain.BotIntermediate:
		return &IntermediateBot{}, nil
	case domain.BotDifficult:
		return &DifficultBot{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %q", level)
	}
}
