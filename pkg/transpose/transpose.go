// Package transpose chooses the semitone offset applied to a song before
// direction mapping.
//
// The search is a brute-force scan of a fixed half-semitone grid. For each
// candidate offset the cost is the number of note events that no modifier
// hold combination can rescue; the strategy decides which candidate wins.
// Everything here is a pure, deterministic function of the note sequence.
package transpose

import (
	"fmt"
	"math"

	"github.com/burrowlab/wellflute/pkg/flute"
	"github.com/burrowlab/wellflute/pkg/score"
)

// Kind enumerates offset selection strategies.
type Kind int

const (
	None Kind = iota
	Manual
	Optimal
	High
	Low
	Auto
)

var kindNames = [...]string{"none", "manual", "optimal", "high", "low", "auto"}

func (k Kind) String() string {
	if k < None || k > Auto {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Strategy selects how the offset is chosen.
type Strategy struct {
	Kind Kind

	// Offset is the fixed offset for Manual.
	Offset float64

	// FromSong makes Manual use the song's stored offset instead of Offset.
	FromSong bool

	// Preference names the tie-break used by Auto: Optimal, High or Low.
	// The zero value defaults to Optimal.
	Preference Kind
}

// ConfigError reports a strategy that cannot be evaluated.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "strategy: " + e.Reason }

// Result is the outcome of an offset search.
type Result struct {
	Offset     float64
	Unplayable int
	Strategy   Kind
}

const (
	candidateMin  = -24.0
	candidateMax  = 24.0
	candidateStep = 0.5
)

// Candidates returns the offset grid searched by every strategy,
// ascending from -24 to +24 in half-semitone steps.
func Candidates() []float64 {
	n := int((candidateMax-candidateMin)/candidateStep) + 1
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, candidateMin+float64(i)*candidateStep)
	}
	return out
}

// Cost counts the note events that remain unplayable under offset.
// Rests are ignored.
func Cost(events []score.Event, offset float64) int {
	cost := 0
	for _, ev := range events {
		if ev.Rest {
			continue
		}
		if !flute.Playable(ev.Pitch + offset) {
			cost++
		}
	}
	return cost
}

// Choose returns the offset mandated by the strategy. songOffset is the
// song's stored default offset, if any; it is consulted only by
// Manual+FromSong.
func Choose(events []score.Event, s Strategy, songOffset *float64) (Result, error) {
	switch s.Kind {
	case None:
		return Result{Offset: 0, Unplayable: Cost(events, 0), Strategy: None}, nil

	case Manual:
		offset := s.Offset
		if s.FromSong {
			if songOffset == nil {
				return Result{}, &ConfigError{Reason: "manual song: the song has no stored offset"}
			}
			offset = *songOffset
		}
		return Result{Offset: offset, Unplayable: Cost(events, offset), Strategy: Manual}, nil

	case Optimal:
		offset := chooseOptimal(events, Candidates())
		return Result{Offset: offset, Unplayable: Cost(events, offset), Strategy: Optimal}, nil

	case High:
		offset := chooseDirectional(events, High)
		return Result{Offset: offset, Unplayable: Cost(events, offset), Strategy: High}, nil

	case Low:
		offset := chooseDirectional(events, Low)
		return Result{Offset: offset, Unplayable: Cost(events, offset), Strategy: Low}, nil

	case Auto:
		pref := s.Preference
		if pref == None {
			pref = Optimal
		}
		if pref != Optimal && pref != High && pref != Low {
			return Result{}, &ConfigError{Reason: fmt.Sprintf("auto: invalid preference %q", pref)}
		}
		offset := chooseAuto(events, pref)
		return Result{Offset: offset, Unplayable: Cost(events, offset), Strategy: Auto}, nil
	}
	return Result{}, &ConfigError{Reason: fmt.Sprintf("unknown strategy kind %d", int(s.Kind))}
}

// chooseOptimal picks the minimum-cost candidate; ties go to the smallest
// absolute offset, and between an equal-magnitude pair to the negative one.
func chooseOptimal(events []score.Event, candidates []float64) float64 {
	best := candidates[0]
	bestCost := Cost(events, best)
	for _, o := range candidates[1:] {
		c := Cost(events, o)
		if c < bestCost || (c == bestCost && math.Abs(o) < math.Abs(best)) {
			best, bestCost = o, c
		}
	}
	return best
}

// chooseDirectional restricts the search to one sign of the grid. High
// breaks ties toward the largest offset, Low toward the most negative.
// The directional preference wins even when the other sign holds a
// strictly cheaper candidate.
func chooseDirectional(events []score.Event, kind Kind) float64 {
	var best float64
	bestCost := -1
	for _, o := range Candidates() {
		if (kind == High && o < 0) || (kind == Low && o > 0) {
			continue
		}
		c := Cost(events, o)
		switch {
		case bestCost < 0 || c < bestCost:
			best, bestCost = o, c
		case c == bestCost && kind == High && o > best:
			best = o
		case c == bestCost && kind == Low && o < best:
			best = o
		}
	}
	return best
}

// chooseAuto finds the global minimum cost, then applies the preference's
// tie-break inside the set of candidates achieving it.
func chooseAuto(events []score.Event, pref Kind) float64 {
	candidates := Candidates()
	minCost := Cost(events, candidates[0])
	for _, o := range candidates[1:] {
		if c := Cost(events, o); c < minCost {
			minCost = c
		}
	}

	var tied []float64
	for _, o := range candidates {
		if Cost(events, o) == minCost {
			tied = append(tied, o)
		}
	}

	switch pref {
	case High:
		return tied[len(tied)-1] // candidates ascend, so the last is largest
	case Low:
		return tied[0]
	default:
		return chooseOptimal(events, tied)
	}
}
