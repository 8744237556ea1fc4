// Package score builds absolute-pitch, absolute-duration note events from
// parsed jianpu bars.
//
// Pitch is measured in semitones relative to the song's tonic at the middle
// octave. Duration is measured in beat units; one top-level token is one
// unit, a dotted token 1.5, and members of a k-note group 1/k each, with
// dotting applied multiplicatively inside groups.
package score

import (
	"fmt"

	"github.com/burrowlab/wellflute/pkg/jianpu"
)

// scaleTable maps major scale degrees 1..7 to semitone steps above the tonic.
var scaleTable = [7]float64{0, 2, 4, 5, 7, 9, 11}

// Position locates a note event in its source notation.
type Position struct {
	Bar   int // bar index within the song
	Index int // flattened token index within the bar
}

// Event is one note or rest with absolute pitch and duration.
type Event struct {
	Pitch float64 // semitones above the tonic; meaningless when Rest
	Units float64 // duration in beat units
	Start float64 // cumulative units from the start of the song
	Rest  bool
	Pos   Position
}

// DegreePitch returns the semitone value for a scale degree at an octave.
func DegreePitch(degree int, octave jianpu.Octave) float64 {
	return scaleTable[degree-1] + 12*float64(octave)
}

// Build flattens parsed bars into an ordered event sequence with cumulative
// duration offsets. Duration bookkeeping is purely additive; bars with
// non-integral totals are not rejected here.
//
// An extension dash folds its duration into the preceding event; a dash with
// no preceding event in the song is an error.
func Build(bars []jianpu.Bar) ([]Event, error) {
	var events []Event
	cum := 0.0

	for barIdx, bar := range bars {
		tokenIdx := 0
		for _, elem := range bar.Elements {
			unit := 1.0
			if elem.Group {
				unit = 1.0 / float64(len(elem.Tokens))
			}
			for _, tok := range elem.Tokens {
				units := unit
				if tok.Dotted {
					units *= 1.5
				}
				pos := Position{Bar: barIdx, Index: tokenIdx}
				tokenIdx++

				switch tok.Kind {
				case jianpu.TokenExtend:
					if len(events) == 0 {
						return nil, fmt.Errorf("bar %d: extension dash with no preceding note", barIdx)
					}
					events[len(events)-1].Units += units
					cum += units
				case jianpu.TokenRest:
					events = append(events, Event{
						Units: units,
						Start: cum,
						Rest:  true,
						Pos:   pos,
					})
					cum += units
				case jianpu.TokenNote:
					events = append(events, Event{
						Pitch: DegreePitch(tok.Degree, tok.Octave),
						Units: units,
						Start: cum,
						Pos:   pos,
					})
					cum += units
				default:
					return nil, fmt.Errorf("bar %d: unknown token kind %d", barIdx, tok.Kind)
				}
			}
		}
	}
	return events, nil
}

// RangeInfo summarizes the pitch range of a note sequence, rests excluded.
type RangeInfo struct {
	Min       float64
	Max       float64
	Span      float64
	NoteCount int
}

// Octaves is the range span expressed in octaves.
func (r RangeInfo) Octaves() float64 { return r.Span / 12 }

// Range analyzes the pitch range of the non-rest events.
func Range(events []Event) RangeInfo {
	var info RangeInfo
	for _, ev := range events {
		if ev.Rest {
			continue
		}
		if info.NoteCount == 0 || ev.Pitch < info.Min {
			info.Min = ev.Pitch
		}
		if info.NoteCount == 0 || ev.Pitch > info.Max {
			info.Max = ev.Pitch
		}
		info.NoteCount++
	}
	info.Span = info.Max - info.Min
	return info
}
