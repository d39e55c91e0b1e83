package game

import (
	"log/slog"
	"testing"
	"time"

	"github.com/samdwyer/swipegeons/internal/dungeon"
	"github.com/samdwyer/swipegeons/internal/world"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"SWIPEGEONS_SEED", "SWIPEGEONS_DUNGEON", "SWIPEGEONS_FPS",
		"SWIPEGEONS_ROOM_WIDTH", "SWIPEGEONS_ROOM_HEIGHT", "SWIPEGEONS_SWIPE_THRESHOLD",
		"SWIPEGEONS_LOG_FILE", "SWIPEGEONS_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SWIPEGEONS_SEED", "1234")
	t.Setenv("SWIPEGEONS_DUNGEON", "first_steps")
	t.Setenv("SWIPEGEONS_FPS", "20")
	t.Setenv("SWIPEGEONS_ROOM_WIDTH", "320")
	t.Setenv("SWIPEGEONS_ROOM_HEIGHT", "240.5")
	t.Setenv("SWIPEGEONS_SWIPE_THRESHOLD", "6")
	t.Setenv("SWIPEGEONS_LOG_FILE", "/tmp/swipegeons.log")
	t.Setenv("SWIPEGEONS_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := Config{
		Seed:           1234,
		Dungeon:        "first_steps",
		FrameInterval:  50 * time.Millisecond,
		RoomWidth:      320,
		RoomHeight:     240.5,
		SwipeThreshold: 6,
		LogFile:        "/tmp/swipegeons.log",
		LogLevel:       slog.LevelDebug,
	}
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigMaxFPS(t *testing.T) {
	t.Setenv("SWIPEGEONS_FPS", "1000")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.FrameInterval != time.Millisecond {
		t.Errorf("FrameInterval = %v, want 1ms", cfg.FrameInterval)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SWIPEGEONS_SEED", "abc"},
		{"SWIPEGEONS_FPS", "0"},
		{"SWIPEGEONS_FPS", "-5"},
		{"SWIPEGEONS_FPS", "1001"},
		{"SWIPEGEONS_FPS", "2000000000"},
		{"SWIPEGEONS_ROOM_WIDTH", "wide"},
		{"SWIPEGEONS_SWIPE_THRESHOLD", "1.5"},
		{"SWIPEGEONS_LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadConfig(); err == nil {
				t.Errorf("LoadConfig() with %s=%q error = nil", tt.key, tt.value)
			}
		})
	}
}

func TestOnEventMessages(t *testing.T) {
	tests := []struct {
		name string
		ev   dungeon.Event
		want string
	}{
		{"switch", dungeon.Event{Kind: dungeon.EventSwitchStarted, Direction: dungeon.Left}, "Heading left..."},
		{"enemies", dungeon.Event{Kind: dungeon.EventRoomEntered, Position: world.Coord{X: 1, Y: 1}, Enemies: 2}, "Room (1,1): 2 enemies attack!"},
		{"quiet", dungeon.Event{Kind: dungeon.EventRoomEntered, Position: world.Coord{X: 1}}, "Room (1,0) is quiet."},
		{"loot", dungeon.Event{Kind: dungeon.EventRoomCleared, Position: world.Coord{X: 1, Y: 1}, Loot: []string{"Iron Sword"}}, "Room (1,1) cleared. Found: [Iron Sword] (Enter to equip Iron Sword)"},
		{"no loot", dungeon.Event{Kind: dungeon.EventRoomCleared, Position: world.Coord{}}, "Room (0,0) cleared."},
		{"defeat", dungeon.Event{Kind: dungeon.EventHeroDefeated}, "You have fallen."},
		{"equip", dungeon.Event{Kind: dungeon.EventItemEquipped, Item: "Heart Charm"}, "Equipped Heart Charm."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Game{}
			g.onEvent(tt.ev)
			if g.message != tt.want {
				t.Errorf("message = %q, want %q", g.message, tt.want)
			}
		})
	}
}
