package ui

import (
	"fmt"

	"lifeview/pkg/core"
)

// statusLines flattens a parameter snapshot into display lines: a header per
// group followed by one "label: value" line per parameter.
func statusLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for i, g := range snap.Groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}
