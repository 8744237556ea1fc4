// Package flute models the 8-direction instrument and resolves absolute
// pitches to directional inputs.
//
// The instrument natively plays exactly 8 pitches spanning one octave: the
// seven major scale degrees at the middle octave plus the tonic one octave
// up. Two auxiliary holds extend the reach: the octave-down hold lowers the
// sounded pitch by 12 semitones, the semitone-up hold raises it by 1. Holds
// are momentary and re-evaluated per note.
package flute

import "math"

// Direction identifies one of the 8 playable input directions, numbered
// clockwise from east. The zero value means "no direction" (rests and
// unplayable notes).
type Direction int

const (
	DirectionNone Direction = iota
	DirectionE              // tonic
	DirectionSE             // degree 2
	DirectionS              // degree 3
	DirectionSW             // degree 4
	DirectionW              // degree 5
	DirectionNW             // degree 6
	DirectionN              // degree 7
	DirectionNE             // tonic, one octave up
)

var directionArrows = [...]string{"", "→", "↘", "↓", "↙", "←", "↖", "↑", "↗"}

// Arrow returns the compass glyph for the direction.
func (d Direction) Arrow() string {
	if d < DirectionE || d > DirectionNE {
		return ""
	}
	return directionArrows[d]
}

// Modifier is a bit set of auxiliary hold inputs.
type Modifier uint8

const (
	// ModOctaveDown lowers the sounded pitch by one octave while held.
	ModOctaveDown Modifier = 1 << iota
	// ModSemitoneUp raises the sounded pitch by one semitone while held.
	ModSemitoneUp
)

// Has reports whether all holds in m2 are present in m.
func (m Modifier) Has(m2 Modifier) bool { return m&m2 == m2 }

func (m Modifier) String() string {
	switch {
	case m.Has(ModOctaveDown | ModSemitoneUp):
		return "8vb+♯"
	case m.Has(ModOctaveDown):
		return "8vb"
	case m.Has(ModSemitoneUp):
		return "♯"
	}
	return ""
}

// nativePitches maps the 8 directly playable semitone values (relative to
// the tonic) to their directions.
var nativePitches = map[int]Direction{
	0:  DirectionE,
	2:  DirectionSE,
	4:  DirectionS,
	5:  DirectionSW,
	7:  DirectionW,
	9:  DirectionNW,
	11: DirectionN,
	12: DirectionNE,
}

// Mapping is the resolved input for a single pitch.
type Mapping struct {
	Direction Direction
	Modifiers Modifier
}

// Resolve maps an absolute pitch to the direction and holds that sound it.
// It is a pure function of the pitch and tries combinations cheapest first:
// native, octave-down hold, semitone-up hold, both holds. When both single
// holds would work the octave-down hold wins. The second return value is
// false when no combination can sound the pitch; half-integer pitches are
// never playable.
func Resolve(pitch float64) (Mapping, bool) {
	n, ok := wholeSemitone(pitch)
	if !ok {
		return Mapping{}, false
	}
	if d, ok := nativePitches[n]; ok {
		return Mapping{Direction: d}, true
	}
	// Octave-down sounds 12 below the pressed direction.
	if d, ok := nativePitches[n+12]; ok {
		return Mapping{Direction: d, Modifiers: ModOctaveDown}, true
	}
	// Semitone-up sounds 1 above the pressed direction.
	if d, ok := nativePitches[n-1]; ok {
		return Mapping{Direction: d, Modifiers: ModSemitoneUp}, true
	}
	if d, ok := nativePitches[n+11]; ok {
		return Mapping{Direction: d, Modifiers: ModOctaveDown | ModSemitoneUp}, true
	}
	return Mapping{}, false
}

// Playable reports whether some hold combination can sound the pitch.
func Playable(pitch float64) bool {
	_, ok := Resolve(pitch)
	return ok
}

func wholeSemitone(pitch float64) (int, bool) {
	n := math.Round(pitch)
	if math.Abs(pitch-n) > 1e-9 {
		return 0, false
	}
	return int(n), true
}
