// Package game hosts the world: it owns the frame loop, input routing,
// drawing and telemetry around the simulation core.
package game

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/platformer/camera"
	"github.com/pthm-cable/platformer/components"
	"github.com/pthm-cable/platformer/config"
	"github.com/pthm-cable/platformer/systems"
	"github.com/pthm-cable/platformer/telemetry"
	"github.com/pthm-cable/platformer/ui"
	"github.com/pthm-cable/platformer/world"
)

// Options configures a Game.
type Options struct {
	Headless       bool
	LogStats       bool   // Log perf stats each window
	OutputDir      string // CSV/config output ("" = disabled)
	StepsPerUpdate int    // Simulation steps per Update call
	Script         systems.Input
	PlayerStart    r2.Vec // Starting position of the player
}

// Game holds the complete game state.
type Game struct {
	cfg   *config.Config
	world *world.World

	// Rendering
	camera    *camera.Camera
	hud       *ui.HUD
	drawables []components.Drawable

	// Telemetry
	perf   *telemetry.PerfCollector
	output *telemetry.OutputManager

	// State
	tick           int64
	simTime        float64
	paused         bool
	stepOnce       bool
	stepsPerUpdate int
	headless       bool
	logStats       bool
	followPlayer   bool
	script         systems.Input
	playerStart    r2.Vec

	// Window dimensions
	screenWidth, screenHeight float32
}

// Tick returns the number of simulation steps run so far.
func (g *Game) Tick() int64 {
	return g.tick
}

// World returns the simulated world.
func (g *Game) World() *world.World {
	return g.world
}

// Update runs one graphical frame: input, then one or more simulation steps
// using the measured frame delta.
func (g *Game) Update() {
	g.handleInput()

	if g.paused && !g.stepOnce {
		return
	}

	dt := frameDelta(float64(frameTime()), g.cfg.Physics.MaxFrameDT)
	in := readMovement()

	steps := g.stepsPerUpdate
	if g.stepOnce {
		steps = 1
		g.stepOnce = false
	}
	for i := 0; i < steps; i++ {
		g.simulationStep(dt, in)
	}
}

// UpdateHeadless runs simulation steps with the fixed configured dt and the
// scripted input, without touching any window or input device.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep(g.cfg.Physics.DT, g.script)
	}
}

// frameDelta caps the measured frame time so a stalled frame does not
// launch bodies across the level. A zero limit disables the cap.
func frameDelta(measured, limit float64) float64 {
	if measured < 0 {
		return 0
	}
	if limit > 0 && measured > limit {
		return limit
	}
	return measured
}
