package game

import "log/slog"

// logWorldState logs the current world and player state.
func (g *Game) logWorldState() {
	attrs := []any{
		"tick", g.tick,
		"sim_time", g.simTime,
		"bodies", g.world.Len(),
	}

	if p := g.world.Player(); p != nil {
		c := p.Collider()
		attrs = append(attrs,
			"player", p.Name,
			"x", c.Position.X,
			"y", c.Position.Y,
			"vx", c.Velocity.X,
			"vy", c.Velocity.Y,
			"static", c.Static,
		)
	} else {
		attrs = append(attrs, "player", nil)
	}

	slog.Info("world state", attrs...)
}
