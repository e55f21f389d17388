package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/platformer/renderer"
	"github.com/pthm-cable/platformer/telemetry"
	"github.com/pthm-cable/platformer/ui"
)

const controlsHint = "A/D move  Space pause  N step  R reset  ,/. speed  arrows pan  wheel zoom  F follow  Home camera"

// Draw renders the world and HUD.
func (g *Game) Draw() {
	if g.headless {
		return
	}
	g.perf.RecordFrame()

	player := g.world.Player()
	if g.followPlayer && player != nil {
		pos := player.Collider().Position
		g.camera.Follow(pos.X, pos.Y)
	}

	start := time.Now()
	rl.BeginDrawing()
	rl.ClearBackground(renderer.Background)

	// Entities first, then characters
	g.drawables = g.world.Drawables(g.drawables[:0])
	renderer.DrawBodies(g.camera, g.drawables)
	if player != nil {
		renderer.DrawOutline(g.camera, player.Entity.Drawable(), rl.Black)
	}

	actions := g.hud.Draw(g.hudData())
	g.hud.DrawControls(int32(g.screenHeight), controlsHint)

	rl.EndDrawing()
	g.perf.AddPhase(telemetry.PhaseRender, time.Since(start))

	g.applyHUDActions(actions)
}

// hudData collects the values shown on the HUD.
func (g *Game) hudData() ui.HUDData {
	data := ui.HUDData{
		Tick:           g.tick,
		FPS:            rl.GetFPS(),
		Paused:         g.paused,
		StepsPerUpdate: g.stepsPerUpdate,
		Bodies:         g.world.Len(),
	}
	if p := g.world.Player(); p != nil {
		c := p.Collider()
		data.HasPlayer = true
		data.PlayerName = p.Name
		data.PlayerX, data.PlayerY = c.Position.X, c.Position.Y
		data.PlayerVelX, data.PlayerVelY = c.Velocity.X, c.Velocity.Y
		data.PlayerStatic = c.Static
	}
	return data
}

// applyHUDActions handles button presses from the HUD.
func (g *Game) applyHUDActions(a ui.Actions) {
	if a.TogglePause {
		g.paused = !g.paused
	}
	if a.Step && g.paused {
		g.stepOnce = true
	}
	if a.Reset {
		g.reset()
	}
}
