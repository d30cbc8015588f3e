package ui

import (
	"fmt"

	"flash-ca/internal/core"
)

type hudLine struct {
	text   string
	header bool
}

// snapshotLines flattens the sim's parameter snapshot into panel rows.
func snapshotLines(sim core.Sim) []hudLine {
	lines := []hudLine{{text: sim.Name(), header: true}}
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return lines
	}
	for _, group := range provider.Parameters().Groups {
		lines = append(lines, hudLine{text: group.Name, header: true})
		for _, p := range group.Params {
			lines = append(lines, hudLine{text: fmt.Sprintf("  %-13s %s", p.Label, p.Value)})
		}
	}
	return lines
}
