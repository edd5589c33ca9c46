package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig tunes gameplay and bot pacing. All tick delays are in
// match loop ticks.
type GameConfig struct {
	WinPoints           int `json:"win_points"`
	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// BotMinDelayTicks and BotMaxDelayTicks bound a bot's simulated
	// thinking time between its actions.
	BotMinDelayTicks int `json:"bot_min_delay_ticks"`
	BotMaxDelayTicks int `json:"bot_max_delay_ticks"`
	// BotAutoFillDelayTicks configures how long a short lobby waits
	// before bots are seated to fill it.
	BotAutoFillDelayTicks int `json:"bot_auto_fill_delay_ticks"`
}

// Default returns the built-in configuration used when no config file
// is provided.
func Default() *GameConfig {
	return &GameConfig{
		WinPoints:             10,
		TurnDurationSeconds:   90,
		BotMinDelayTicks:      2,
		BotMaxDelayTicks:      6,
		BotAutoFillDelayTicks: 30,
	}
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		c := Default()
		if err := json.Unmarshal(data, c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, falling back to
// defaults when no file was loaded.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		return Default()
	}
	return cfg
}
