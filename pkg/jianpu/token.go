// Package jianpu parses bars of numbered-notation (jianpu) text into an
// ordered token model.
//
// The dialect understood here:
//
//	1..7     scale degree at the middle octave
//	h3, l6   octave prefix: h = one octave up, l = one octave down
//	5d       dotted note, 1.5x duration
//	0        rest (no octave prefix, no dot)
//	-        extends the previous note or rest by one more unit
//	(1 2)    group: 2+ notes sharing one unit, subdivided evenly;
//	         members separated by spaces or commas, groups do not nest
//	|        bar separator, cosmetic
package jianpu

import "fmt"

// Octave selects a note's register relative to the middle octave.
type Octave int

const (
	OctaveLow  Octave = -1
	OctaveMid  Octave = 0
	OctaveHigh Octave = 1
)

// TokenKind discriminates the token variants.
type TokenKind int

const (
	TokenNote TokenKind = iota + 1
	TokenRest
	TokenExtend
)

// Token is the atomic unit inside a bar. It carries no absolute timing,
// only a relative duration class (Dotted = 1.5 units instead of 1).
type Token struct {
	Kind   TokenKind
	Degree int    // 1..7, notes only
	Octave Octave // notes only
	Dotted bool   // notes and rests never combine this with TokenRest
}

// Element is one top-level entry of a bar: a single token, or a group of
// two or more tokens that share one unit of duration split evenly.
type Element struct {
	Tokens []Token
	Group  bool
}

// Bar is the parsed form of one bar of text.
type Bar struct {
	Elements []Element
}

// ParseError reports a malformed token together with its location in the
// source text.
type ParseError struct {
	Bar     int    // bar index within the song
	Offset  int    // byte offset within the bar text
	Excerpt string // the offending substring
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bar %d: invalid token %q at offset %d: %s",
		e.Bar, e.Excerpt, e.Offset, e.Reason)
}
