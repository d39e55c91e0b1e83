// Package game runs the frame loop: terminal input in, one controller
// update per frame, then a redraw.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/swipegeons/internal/dungeon"
	"github.com/samdwyer/swipegeons/internal/gamedata"
	"github.com/samdwyer/swipegeons/internal/geom"
	"github.com/samdwyer/swipegeons/internal/telemetry"
	"github.com/samdwyer/swipegeons/internal/ui"
	"github.com/samdwyer/swipegeons/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	lib      *gamedata.Library
	screen   *ui.Screen
	renderer *ui.Renderer
	swipe    *ui.SwipeDetector
	ctrl     *dungeon.Controller
	message  string
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	lib, err := gamedata.LoadLibrary()
	if err != nil {
		return nil, fmt.Errorf("load game data: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		lib:      lib,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		swipe:    ui.NewSwipeDetector(cfg.SwipeThreshold),
		running:  true,
	}, nil
}

// Run loads the dungeon and executes the main loop until the player quits.
// Terminal events are read on their own goroutine and handed to the frame
// loop, which is the only goroutine touching the controller.
func (g *Game) Run(ctx context.Context) error {
	if err := g.start(ctx); err != nil {
		g.screen.Close()
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(events)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return nil // screen closed
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		defer cancel()
		defer g.screen.Close()
		return g.loop(ctx, events)
	})

	return eg.Wait()
}

// start loads the configured dungeon and creates a fresh controller.
func (g *Game) start(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	size := geom.V(g.cfg.RoomWidth, g.cfg.RoomHeight)
	d, err := world.Load(ctx, g.lib, g.cfg.Dungeon, world.LoadOptions{
		RoomSize: size,
		Seed:     g.cfg.Seed,
	})
	if err != nil {
		return err
	}

	ctrl, err := dungeon.New(d.Grid, d.Hero, d.Start,
		dungeon.WithRoomSize(d.Size),
		dungeon.WithListener(dungeon.ListenerFunc(g.onEvent)),
	)
	if err != nil {
		return err
	}
	g.ctrl = ctrl
	g.message = d.Name + ": use the arrow keys or swipe to move."

	span.SetAttributes(
		attribute.String("dungeon.id", d.ID),
		attribute.Int("dungeon.rooms", d.Grid.Len()),
		attribute.Int("start_x", d.Start.X),
		attribute.Int("start_y", d.Start.Y),
	)
	slog.InfoContext(ctx, "dungeon loaded", "dungeon", d.ID, "rooms", d.Grid.Len(), "start", d.Start.String())
	return nil
}

// loop updates and renders once per frame and applies input as it arrives.
func (g *Game) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(g.cfg.FrameInterval)
	defer ticker.Stop()

	last := time.Now()
	for g.running {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := g.handleEvent(ctx, ev); err != nil {
				return err
			}
		case now := <-ticker.C:
			g.ctrl.Update(ctx, now.Sub(last))
			last = now
			g.renderer.Render(g.ctrl, g.message)
		}
	}
	return nil
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		if dir, ok := g.swipe.Feed(ev); ok {
			g.ctrl.IssueDirectionalIntent(ctx, dir)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return nil
	case tcell.KeyEnter:
		// Confirm: start over after a defeat, otherwise equip the latest loot.
		if g.ctrl.Defeated() {
			return g.start(ctx)
		}
		g.ctrl.IssueConfirmIntent(ctx)
		return nil
	case tcell.KeyRune:
		if r := ev.Rune(); r == 'q' || r == 'Q' {
			g.running = false
			return nil
		}
	}

	if dir, ok := ui.KeyDirection(ev); ok {
		g.ctrl.IssueDirectionalIntent(ctx, dir)
	}
	return nil
}

// onEvent turns controller events into the status message.
func (g *Game) onEvent(ev dungeon.Event) {
	switch ev.Kind {
	case dungeon.EventSwitchStarted:
		g.message = "Heading " + ev.Direction.String() + "..."
	case dungeon.EventRoomEntered:
		if ev.Enemies > 0 {
			g.message = fmt.Sprintf("Room %s: %d enemies attack!", ev.Position, ev.Enemies)
		} else {
			g.message = fmt.Sprintf("Room %s is quiet.", ev.Position)
		}
	case dungeon.EventRoomCleared:
		if len(ev.Loot) > 0 {
			g.message = fmt.Sprintf("Room %s cleared. Found: %v (Enter to equip %s)", ev.Position, ev.Loot, ev.Loot[len(ev.Loot)-1])
		} else {
			g.message = fmt.Sprintf("Room %s cleared.", ev.Position)
		}
	case dungeon.EventHeroDefeated:
		g.message = "You have fallen."
	case dungeon.EventItemEquipped:
		g.message = "Equipped " + ev.Item + "."
	}
}
