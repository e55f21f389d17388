package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/platformer/camera"
	"github.com/pthm-cable/platformer/config"
	"github.com/pthm-cable/platformer/telemetry"
	"github.com/pthm-cable/platformer/ui"
	"github.com/pthm-cable/platformer/world"
)

// NewGameWithOptions builds the initial world and the host around it.
// config.Init must have been called.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		stepsPerUpdate: steps,
		headless:       opts.Headless,
		logStats:       opts.LogStats,
		followPlayer:   cfg.Camera.FollowPlayer,
		script:         opts.Script,
		playerStart:    opts.PlayerStart,
		screenWidth:    cfg.Derived.ScreenW32,
		screenHeight:   cfg.Derived.ScreenH32,
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		g.output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	if !opts.Headless {
		g.camera = camera.New(float64(g.screenWidth), float64(g.screenHeight), cfg.Camera.PixelsPerUnit)
		g.camera.MinZoom = cfg.Camera.MinZoom
		g.camera.MaxZoom = cfg.Camera.MaxZoom
		g.hud = ui.NewHUD()
	}

	g.reset()
	return g, nil
}

// reset replaces the world with a fresh sample level.
// New bodies get new ids; ids of the old world are not reused.
func (g *Game) reset() {
	g.world = world.NewSampleAt(g.playerStart)
	g.drawables = g.drawables[:0]

	id, _ := g.world.PlayerID()
	slog.Info("world initialized", "bodies", g.world.Len(), "player_id", id, "tick", g.tick)
}

// Unload releases all resources.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	g.world = nil
}
