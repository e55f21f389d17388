package game

import (
	"log/slog"

	"github.com/pthm-cable/platformer/telemetry"
	"github.com/pthm-cable/platformer/world"
)

// recordTrace writes the player trace row for this tick, if output is enabled.
func (g *Game) recordTrace(res world.StepResult) {
	if g.output == nil || g.tick%int64(g.cfg.Telemetry.TraceEvery) != 0 {
		return
	}
	rec := telemetry.NewTraceRecord(g.tick, g.simTime, g.world, res)
	if err := g.output.WriteTrace(rec); err != nil {
		slog.Error("failed to write trace", "error", err)
	}
}

// flushTelemetry logs and writes perf stats once per perf window.
func (g *Game) flushTelemetry() {
	if g.tick%int64(g.cfg.Telemetry.PerfWindow) != 0 {
		return
	}

	perfStats := g.perf.Stats()

	if g.logStats {
		slog.Info("perf", "tick", g.tick, "stats", perfStats)
		g.logWorldState()
	}

	if g.output != nil {
		if err := g.output.WritePerf(perfStats, g.tick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
