package telemetry

import (
	"github.com/pthm-cable/platformer/components"
	"github.com/pthm-cable/platformer/world"
)

// TraceRecord is one row of the per-tick player trace.
type TraceRecord struct {
	Tick     int64   `csv:"tick"`
	SimTime  float64 `csv:"sim_time"`
	PlayerX  float64 `csv:"player_x"`
	PlayerY  float64 `csv:"player_y"`
	VelX     float64 `csv:"vel_x"`
	VelY     float64 `csv:"vel_y"`
	Static   bool    `csv:"static"`
	Contacts int     `csv:"contacts"`
	Bodies   int     `csv:"bodies"`
}

// NewTraceRecord captures the player's state after a step.
// A world without a player yields a record with zero player fields.
func NewTraceRecord(tick int64, simTime float64, w *world.World, res world.StepResult) TraceRecord {
	rec := TraceRecord{
		Tick:     tick,
		SimTime:  simTime,
		Contacts: len(res.Contacts),
		Bodies:   w.Len(),
	}
	if p := w.Player(); p != nil {
		fillCollider(&rec, p.Collider())
	}
	return rec
}

func fillCollider(rec *TraceRecord, c *components.Collider) {
	rec.PlayerX = c.Position.X
	rec.PlayerY = c.Position.Y
	rec.VelX = c.Velocity.X
	rec.VelY = c.Velocity.Y
	rec.Static = c.Static
}
