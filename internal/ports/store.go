package ports

import (
	"context"

	"github.com/MarcNoteuil/CatanDesBibis/internal/domain"
)

// GameRecord is the persisted form of one game: the state snapshot
// plus the undrawn development card stack.
type GameRecord struct {
	State *domain.GameState    `json:"state"`
	Deck  []domain.DevCardType `json:"deck"`
}

// GameStore defines the interface for durable game persistence.
type GameStore interface {
	// Load retrieves a persisted game by id. Returns nil, nil when the
	// game does not exist.
	Load(ctx context.Context, gameID string) (*GameRecord, error)

	// Save writes a full game snapshot, replacing any previous one.
	Save(ctx context.Context, record *GameRecord) error

	// Delete removes a persisted game.
	Delete(ctx context.Context, gameID string) error
}

// PointsLedger records ladder points per user when a game finishes.
type PointsLedger interface {
	// RecordResult adds points (possibly negative) to a user's running
	// total and returns the new total.
	RecordResult(ctx context.Context, userID string, points int) (int, error)
}
