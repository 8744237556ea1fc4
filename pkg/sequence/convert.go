package sequence

import (
	"github.com/burrowlab/wellflute/pkg/jianpu"
	"github.com/burrowlab/wellflute/pkg/score"
	"github.com/burrowlab/wellflute/pkg/song"
	"github.com/burrowlab/wellflute/pkg/transpose"
)

// Convert runs the full pipeline for a song: parse every bar, build the
// note events, choose the transposition, map and time the commands.
// It is pure and side-effect free; concurrent calls are independent.
func Convert(s *song.Song, strat transpose.Strategy) ([]Command, Diagnostics, error) {
	events, err := Events(s)
	if err != nil {
		return nil, Diagnostics{}, err
	}

	res, err := transpose.Choose(events, strat, s.Offset)
	if err != nil {
		return nil, Diagnostics{}, err
	}

	cmds, diag := Build(events, res.Offset, s.BPM)
	diag.Strategy = res.Strategy
	return cmds, diag, nil
}

// Events parses the song's bars and builds its note event sequence.
func Events(s *song.Song) ([]score.Event, error) {
	texts := s.BarTexts()
	bars := make([]jianpu.Bar, 0, len(texts))
	for i, text := range texts {
		bar, err := jianpu.ParseBar(text, i)
		if err != nil {
			return nil, err
		}
		bars = append(bars, bar)
	}
	return score.Build(bars)
}
