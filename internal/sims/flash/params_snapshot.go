package flash

import "flash-ca/internal/core"

// Parameters reports the grid shape and flash counters.
func (s *Swarm) Parameters() core.ParameterSnapshot {
	size := s.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", size.W),
				core.IntParam("h", "Height", size.H),
				core.Int64Param("seed", "Seed", s.seed),
			},
		},
		{
			Name: "Flashes",
			Params: []core.Parameter{
				core.IntParam("tick", "Tick", s.tick),
				core.IntParam("last", "Last tick", s.lastFlashes),
				core.IntParam("total", "Total", s.total),
				core.BoolParam("synced", "Synchronised", s.tick > 0 && s.lastFlashes == s.grid.Len()),
			},
		},
	}}
}
