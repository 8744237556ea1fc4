package sequence

import (
	"math"
	"reflect"
	"testing"

	"github.com/burrowlab/wellflute/pkg/flute"
	"github.com/burrowlab/wellflute/pkg/score"
	"github.com/burrowlab/wellflute/pkg/song"
	"github.com/burrowlab/wellflute/pkg/transpose"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 0.05 }

func TestBuildTimingScenario(t *testing.T) {
	// "1 5 7 (0 5)" at 90 bpm: each top-level unit is 666.7ms, the group
	// members 333.3ms each.
	s := &song.Song{Name: "t", BPM: 90, Jianpu: []string{"1 5 7 (0 5)"}}
	cmds, diag, err := Convert(s, transpose.Strategy{Kind: transpose.None})
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 5 {
		t.Fatalf("got %d commands, want 5", len(cmds))
	}
	for i, want := range []float64{666.7, 666.7, 666.7, 333.3, 333.3} {
		if !approx(cmds[i].DurationMS, want) {
			t.Errorf("command %d duration = %v, want ~%v", i, cmds[i].DurationMS, want)
		}
	}
	if !cmds[3].Rest || cmds[3].Direction != flute.DirectionNone {
		t.Errorf("group rest mapped wrong: %+v", cmds[3])
	}
	if len(diag.Unplayable) != 0 {
		t.Errorf("unexpected unplayable notes: %v", diag.Unplayable)
	}
}

func TestHighTonicIsNative(t *testing.T) {
	s := &song.Song{Name: "t", BPM: 60, Jianpu: []string{"h1"}}
	cmds, _, err := Convert(s, transpose.Strategy{Kind: transpose.None})
	if err != nil {
		t.Fatal(err)
	}
	if cmds[0].Direction != flute.DirectionNE || cmds[0].Modifiers != 0 {
		t.Errorf("h1 = %+v, want upper-tonic direction with no modifiers", cmds[0])
	}
}

func TestUnplayableGoesToDiagnostics(t *testing.T) {
	// h2 (pitch 14) is out of reach at offset 0.
	s := &song.Song{Name: "t", BPM: 60, Jianpu: []string{"1 h2 5"}}
	cmds, diag, err := Convert(s, transpose.Strategy{Kind: transpose.None})
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}
	if cmds[1].Direction != flute.DirectionNone || cmds[1].Rest {
		t.Errorf("unplayable note should become a silent non-rest command, got %+v", cmds[1])
	}
	want := []score.Position{{Bar: 0, Index: 1}}
	if !reflect.DeepEqual(diag.Unplayable, want) {
		t.Errorf("unplayable = %v, want %v", diag.Unplayable, want)
	}
	if cmds[1].DurationMS <= 0 {
		t.Error("unplayable note lost its duration")
	}
}

func TestRestsKeepDuration(t *testing.T) {
	s := &song.Song{Name: "t", BPM: 120, Jianpu: []string{"0 0 1"}}
	cmds, _, err := Convert(s, transpose.Strategy{Kind: transpose.None})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if !cmds[i].Rest || cmds[i].Modifiers != 0 || cmds[i].Direction != flute.DirectionNone {
			t.Errorf("rest command %d = %+v", i, cmds[i])
		}
		if cmds[i].DurationMS <= 0 {
			t.Errorf("rest command %d has no duration", i)
		}
	}
}

func TestEqualPitchesMapIdentically(t *testing.T) {
	s := &song.Song{Name: "t", BPM: 100, Jianpu: []string{"3 5 3 | 3d (3 3)"}}
	cmds, _, err := Convert(s, transpose.Strategy{Kind: transpose.Optimal})
	if err != nil {
		t.Fatal(err)
	}
	first := cmds[0]
	for i, cmd := range cmds {
		if i == 1 {
			continue // the lone 5
		}
		if cmd.Direction != first.Direction || cmd.Modifiers != first.Modifiers {
			t.Errorf("command %d maps degree 3 differently: %+v vs %+v", i, cmd, first)
		}
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	s := &song.Song{
		Name:   "t",
		BPM:    90,
		Jianpu: []string{"l5 1 (2 3) h1d - | h2 0 7"},
	}
	for _, strat := range []transpose.Strategy{
		{Kind: transpose.Optimal},
		{Kind: transpose.Auto, Preference: transpose.High},
		{Kind: transpose.Manual, Offset: -2},
	} {
		a, da, err := Convert(s, strat)
		if err != nil {
			t.Fatal(err)
		}
		b, db, err := Convert(s, strat)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(a, b) || !reflect.DeepEqual(da, db) {
			t.Errorf("strategy %v: conversion not deterministic", strat.Kind)
		}
	}
}

func TestManualOffsetApplied(t *testing.T) {
	s := &song.Song{Name: "t", BPM: 60, Jianpu: []string{"1 2 3"}}
	_, diag, err := Convert(s, transpose.Strategy{Kind: transpose.Manual, Offset: -2})
	if err != nil {
		t.Fatal(err)
	}
	if diag.Offset != -2 {
		t.Errorf("offset = %v, want -2", diag.Offset)
	}
}

func TestConvertParseFailureAborts(t *testing.T) {
	s := &song.Song{Name: "t", BPM: 60, Jianpu: []string{"1 2", "3 junk!"}}
	if _, _, err := Convert(s, transpose.Strategy{Kind: transpose.None}); err == nil {
		t.Fatal("expected parse error to abort conversion")
	}
}
