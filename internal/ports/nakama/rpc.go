package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/MarcNoteuil/CatanDesBibis/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcCreateGame, rpcCreateGame); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch)
}

// CreateGameRequest configures a private match.
type CreateGameRequest struct {
	MaxPlayers int  `json:"max_players"`
	Bots       bool `json:"bots"`
}

// CreateGameResponse returns the id of the newly created match.
type CreateGameResponse struct {
	MatchID string `json:"match_id"`
}

func rpcCreateGame(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	request := CreateGameRequest{MaxPlayers: 4, Bots: true}
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &request); err != nil {
			logger.Warn("rpcCreateGame [User:%s]: Malformed payload: %v", userID, err)
			return "", runtime.NewError("malformed payload", 3)
		}
	}
	if request.MaxPlayers < app.MinPlayers || request.MaxPlayers > app.MaxPlayers {
		return "", runtime.NewError("max_players out of range", 3)
	}

	params := map[string]interface{}{
		"max_players": float64(request.MaxPlayers),
		"bots":        request.Bots,
	}
	matchID, err := nk.MatchCreate(ctx, MatchNameCatan, params)
	if err != nil {
		logger.Error("rpcCreateGame [User:%s]: Failed to create match: %v", userID, err)
		return "", err
	}

	logger.Info("rpcCreateGame [User:%s]: Created match %s (max_players=%d)", userID, matchID, request.MaxPlayers)
	b, _ := json.Marshal(CreateGameResponse{MatchID: matchID})
	return string(b), nil
}
