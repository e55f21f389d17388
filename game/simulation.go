package game

import (
	"log/slog"

	"github.com/pthm-cable/platformer/systems"
	"github.com/pthm-cable/platformer/telemetry"
	"github.com/pthm-cable/platformer/world"
)

// simulationStep runs a single tick: route input to the player, then step the world.
func (g *Game) simulationStep(dt float64, in systems.Input) {
	g.perf.StartTick()

	// 1. Input must land before the step consumes acceleration
	g.perf.StartPhase(telemetry.PhaseInput)
	g.world.ApplyPlayerInput(in)

	// 2. Resolve collisions and integrate
	g.perf.StartPhase(telemetry.PhaseStep)
	res := g.world.Step(dt)
	g.tick++
	g.simTime += dt

	// 3. Events and trace
	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.logContacts(res)
	g.recordTrace(res)

	g.perf.EndTick()

	g.flushTelemetry()
}

// logContacts logs each collision found this tick.
func (g *Game) logContacts(res world.StepResult) {
	for _, c := range res.Contacts {
		slog.Debug("collided", "tick", g.tick, "a", c.A, "b", c.B)
	}
}
