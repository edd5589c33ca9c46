package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MarcNoteuil/CatanDesBibis/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	gameStoreCollection = "games"
	pointsCollection    = "points"
	pointsKey           = "ladder_total"
)

// NakamaGameStore implements ports.GameStore on top of Nakama's storage
// engine. Records are system-owned so only the server can touch them.
type NakamaGameStore struct {
	nk runtime.NakamaModule
}

// NewNakamaGameStore creates a game store backed by Nakama storage.
func NewNakamaGameStore(nk runtime.NakamaModule) *NakamaGameStore {
	return &NakamaGameStore{nk: nk}
}

// Load retrieves a persisted game by id. Returns nil, nil when absent.
func (s *NakamaGameStore) Load(ctx context.Context, gameID string) (*ports.GameRecord, error) {
	objects, err := s.nk.StorageRead(ctx, []*runtime.StorageRead{
		{Collection: gameStoreCollection, Key: gameID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read game %s: %w", gameID, err)
	}
	if len(objects) == 0 {
		return nil, nil
	}

	record := &ports.GameRecord{}
	if err := json.Unmarshal([]byte(objects[0].Value), record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game %s: %w", gameID, err)
	}
	return record, nil
}

// Save writes a full game snapshot, replacing any previous one.
func (s *NakamaGameStore) Save(ctx context.Context, record *ports.GameRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal game %s: %w", record.State.ID, err)
	}

	_, err = s.nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      gameStoreCollection,
			Key:             record.State.ID,
			Value:           string(value),
			PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write game %s: %w", record.State.ID, err)
	}
	return nil
}

// Delete removes a persisted game.
func (s *NakamaGameStore) Delete(ctx context.Context, gameID string) error {
	err := s.nk.StorageDelete(ctx, []*runtime.StorageDelete{
		{Collection: gameStoreCollection, Key: gameID},
	})
	if err != nil {
		return fmt.Errorf("failed to delete game %s: %w", gameID, err)
	}
	return nil
}

var _ ports.GameStore = (*NakamaGameStore)(nil)

// NakamaPointsLedger implements ports.PointsLedger with one storage
// object per user holding the running total.
type NakamaPointsLedger struct {
	nk runtime.NakamaModule
}

// NewNakamaPointsLedger creates a points ledger backed by Nakama storage.
func NewNakamaPointsLedger(nk runtime.NakamaModule) *NakamaPointsLedger {
	return &NakamaPointsLedger{nk: nk}
}

type pointsRecord struct {
	Total int `json:"total"`
}

// RecordResult adds points to a user's running total and returns the
// new total.
func (l *NakamaPointsLedger) RecordResult(ctx context.Context, userID string, points int) (int, error) {
	objects, err := l.nk.StorageRead(ctx, []*runtime.StorageRead{
		{Collection: pointsCollection, Key: pointsKey, UserID: userID},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to read points for %s: %w", userID, err)
	}

	record := pointsRecord{}
	version := ""
	if len(objects) > 0 {
		if err := json.Unmarshal([]byte(objects[0].Value), &record); err != nil {
			return 0, fmt.Errorf("failed to unmarshal points for %s: %w", userID, err)
		}
		version = objects[0].Version
	}

	record.Total += points
	value, err := json.Marshal(record)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal points for %s: %w", userID, err)
	}

	_, err = l.nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      pointsCollection,
			Key:             pointsKey,
			UserID:          userID,
			Value:           string(value),
			Version:         version,
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to write points for %s: %w", userID, err)
	}
	return record.Total, nil
}

var _ ports.PointsLedger = (*NakamaPointsLedger)(nil)
