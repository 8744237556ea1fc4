// Package sequence assembles mapped note events into the timed command
// list handed to a player or display.
package sequence

import (
	"github.com/burrowlab/wellflute/pkg/flute"
	"github.com/burrowlab/wellflute/pkg/score"
	"github.com/burrowlab/wellflute/pkg/transpose"
)

// Command is one timed directional input. Rests keep their duration but
// carry no direction; notes that no hold combination can sound become
// silent commands and are listed in the diagnostics.
type Command struct {
	Direction  flute.Direction
	Modifiers  flute.Modifier
	DurationMS float64
	Rest       bool
}

// Diagnostics reports how a conversion went.
type Diagnostics struct {
	Offset     float64
	Strategy   transpose.Kind
	Unplayable []score.Position
}

// Build times the events at bpm under the given offset. One beat unit is
// 60000/bpm milliseconds. Source order is preserved; nothing is merged.
func Build(events []score.Event, offset float64, bpm int) ([]Command, Diagnostics) {
	beatMS := 60000.0 / float64(bpm)
	diag := Diagnostics{Offset: offset}

	cmds := make([]Command, 0, len(events))
	for _, ev := range events {
		cmd := Command{DurationMS: ev.Units * beatMS}
		if ev.Rest {
			cmd.Rest = true
		} else if m, ok := flute.Resolve(ev.Pitch + offset); ok {
			cmd.Direction = m.Direction
			cmd.Modifiers = m.Modifiers
		} else {
			diag.Unplayable = append(diag.Unplayable, ev.Pos)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, diag
}
