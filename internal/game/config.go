package game

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// maxFPS bounds the frame rate so the frame interval stays positive.
const maxFPS = 1000

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible room seeds.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Dungeon is the ID of the dungeon definition to play.
	Dungeon string

	// FrameInterval is the time between two simulation updates.
	FrameInterval time.Duration

	// RoomWidth and RoomHeight size room space. Movement speeds are in these units.
	RoomWidth  float64
	RoomHeight float64

	// SwipeThreshold is how many cells a mouse drag must cover to count as a swipe.
	SwipeThreshold int

	// LogFile receives structured logs. Empty discards them.
	LogFile  string
	LogLevel slog.Level
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Dungeon:        "swipegeons",
		FrameInterval:  time.Second / 60,
		RoomWidth:      800,
		RoomHeight:     600,
		SwipeThreshold: 4,
		LogLevel:       slog.LevelInfo,
	}
}

// LoadConfig reads SWIPEGEONS_* environment variables over the defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	var err error

	if cfg.Seed, err = envInt64("SWIPEGEONS_SEED", cfg.Seed); err != nil {
		return cfg, err
	}
	cfg.Dungeon = getEnvDefault("SWIPEGEONS_DUNGEON", cfg.Dungeon)

	fps, err := envInt64("SWIPEGEONS_FPS", 60)
	if err != nil {
		return cfg, err
	}
	if fps <= 0 || fps > maxFPS {
		return cfg, fmt.Errorf("SWIPEGEONS_FPS must be between 1 and %d, got %d", maxFPS, fps)
	}
	cfg.FrameInterval = time.Second / time.Duration(fps)

	if cfg.RoomWidth, err = envFloat("SWIPEGEONS_ROOM_WIDTH", cfg.RoomWidth); err != nil {
		return cfg, err
	}
	if cfg.RoomHeight, err = envFloat("SWIPEGEONS_ROOM_HEIGHT", cfg.RoomHeight); err != nil {
		return cfg, err
	}
	threshold, err := envInt64("SWIPEGEONS_SWIPE_THRESHOLD", int64(cfg.SwipeThreshold))
	if err != nil {
		return cfg, err
	}
	cfg.SwipeThreshold = int(threshold)

	cfg.LogFile = getEnvDefault("SWIPEGEONS_LOG_FILE", "")
	if level := os.Getenv("SWIPEGEONS_LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return cfg, fmt.Errorf("SWIPEGEONS_LOG_LEVEL: %w", err)
		}
	}
	return cfg, nil
}

func getEnvDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func envInt64(key string, defaultValue int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func envFloat(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
