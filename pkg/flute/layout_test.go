package flute

import "testing"

func TestResolveNative(t *testing.T) {
	native := map[float64]Direction{
		0: DirectionE, 2: DirectionSE, 4: DirectionS, 5: DirectionSW,
		7: DirectionW, 9: DirectionNW, 11: DirectionN, 12: DirectionNE,
	}
	for pitch, dir := range native {
		m, ok := Resolve(pitch)
		if !ok {
			t.Fatalf("Resolve(%v): not playable", pitch)
		}
		if m.Direction != dir || m.Modifiers != 0 {
			t.Errorf("Resolve(%v) = %+v, want direction %d with no modifiers", pitch, m, dir)
		}
	}
}

func TestResolveHolds(t *testing.T) {
	tests := []struct {
		pitch float64
		dir   Direction
		mods  Modifier
	}{
		// Octave-down hold: press the direction an octave above.
		{-12, DirectionE, ModOctaveDown},
		{-1, DirectionN, ModOctaveDown},
		{-5, DirectionW, ModOctaveDown},
		{-7, DirectionSW, ModOctaveDown}, // single hold beats both-hold combo
		// Semitone-up hold: press the direction a semitone below.
		{1, DirectionE, ModSemitoneUp},
		{3, DirectionSE, ModSemitoneUp},
		{13, DirectionNE, ModSemitoneUp},
		// Only both holds together reach these.
		{-11, DirectionE, ModOctaveDown | ModSemitoneUp},
		{-2, DirectionNW, ModOctaveDown | ModSemitoneUp},
	}
	for _, tt := range tests {
		m, ok := Resolve(tt.pitch)
		if !ok {
			t.Fatalf("Resolve(%v): not playable", tt.pitch)
		}
		if m.Direction != tt.dir || m.Modifiers != tt.mods {
			t.Errorf("Resolve(%v) = {%d %v}, want {%d %v}",
				tt.pitch, m.Direction, m.Modifiers, tt.dir, tt.mods)
		}
	}
}

func TestResolveUnplayable(t *testing.T) {
	for _, pitch := range []float64{14, 15, 24, -13, -24, 0.5, 3.5, -1.5} {
		if _, ok := Resolve(pitch); ok {
			t.Errorf("Resolve(%v): expected unplayable", pitch)
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	for pitch := -24.0; pitch <= 24.0; pitch += 0.5 {
		a, okA := Resolve(pitch)
		b, okB := Resolve(pitch)
		if a != b || okA != okB {
			t.Fatalf("Resolve(%v) not deterministic: %+v vs %+v", pitch, a, b)
		}
	}
}
