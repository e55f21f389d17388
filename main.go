package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/platformer/config"
	"github.com/pthm-cable/platformer/game"
	"github.com/pthm-cable/platformer/systems"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output perf and world stats via slog")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	outputDir := flag.String("output-dir", "", "Directory for CSV trace/perf logs and config snapshot")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call")
	hold := flag.String("hold", "none", "Headless scripted input: none, left, right, both")
	startY := flag.Float64("start-y", 0, "Player starting height in world units")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	script, err := parseHold(*hold)
	if err != nil {
		slog.Error("invalid -hold", "error", err)
		os.Exit(2)
	}

	opts := game.Options{
		Headless:       *headless,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		StepsPerUpdate: *stepsPerUpdate,
		Script:         script,
		PlayerStart:    r2.Vec{Y: *startY},
	}

	if *headless {
		// Headless mode - pure CPU simulation, no window
		g, err := game.NewGameWithOptions(opts)
		if err != nil {
			slog.Error("failed to start game", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless simulation",
			"dt", cfg.Physics.DT,
			"max_ticks", *maxTicks,
			"steps_per_update", *stepsPerUpdate,
			"hold", *hold,
		)

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", g.Tick())
				return
			}
		}
	}

	// Graphical mode
	if cfg.Screen.VSync {
		rl.SetConfigFlags(rl.FlagVsyncHint | rl.FlagWindowResizable)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to start game", "error", err)
		return
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
}

// parseHold maps the -hold flag to a fixed directional input.
func parseHold(s string) (systems.Input, error) {
	switch s {
	case "", "none":
		return systems.Input{}, nil
	case "left":
		return systems.Input{Left: true}, nil
	case "right":
		return systems.Input{Right: true}, nil
	case "both":
		return systems.Input{Left: true, Right: true}, nil
	}
	return systems.Input{}, fmt.Errorf("unknown direction %q", s)
}
