package ui

import (
	"fmt"
	"strings"

	"falling-sand/internal/core"
)

// ParameterLines flattens a parameter snapshot into "label: value" rows with
// a header row per group.
func ParameterLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, group := range snap.Groups {
		if len(group.Params) == 0 {
			continue
		}
		lines = append(lines, strings.ToUpper(group.Name))
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

// Title returns the panel heading for a simulation.
func Title(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}
