package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/burrowlab/wellflute/pkg/transpose"
)

// ParseStrategy parses a --transpose flag value.
//
// Accepted forms:
//
//	none | optimal | high | low
//	auto | auto=optimal | auto=high | auto=low
//	manual=<offset> | manual=song
//
// Offsets are semitones and may use half steps ("manual=-2", "manual=1.5").
func ParseStrategy(spec string) (transpose.Strategy, error) {
	name, value, hasValue := strings.Cut(strings.TrimSpace(spec), "=")
	name = strings.ToLower(strings.TrimSpace(name))
	value = strings.TrimSpace(value)

	switch name {
	case "none":
		if hasValue {
			return transpose.Strategy{}, fmt.Errorf("transpose %q takes no value", name)
		}
		return transpose.Strategy{Kind: transpose.None}, nil

	case "optimal":
		if hasValue {
			return transpose.Strategy{}, fmt.Errorf("transpose %q takes no value", name)
		}
		return transpose.Strategy{Kind: transpose.Optimal}, nil

	case "high":
		if hasValue {
			return transpose.Strategy{}, fmt.Errorf("transpose %q takes no value", name)
		}
		return transpose.Strategy{Kind: transpose.High}, nil

	case "low":
		if hasValue {
			return transpose.Strategy{}, fmt.Errorf("transpose %q takes no value", name)
		}
		return transpose.Strategy{Kind: transpose.Low}, nil

	case "auto":
		s := transpose.Strategy{Kind: transpose.Auto, Preference: transpose.Optimal}
		if hasValue {
			switch value {
			case "optimal":
				s.Preference = transpose.Optimal
			case "high":
				s.Preference = transpose.High
			case "low":
				s.Preference = transpose.Low
			default:
				return transpose.Strategy{}, fmt.Errorf("auto preference must be optimal, high or low, got %q", value)
			}
		}
		return s, nil

	case "manual":
		if !hasValue || value == "" {
			return transpose.Strategy{}, fmt.Errorf("manual needs a value: manual=<offset> or manual=song")
		}
		if value == "song" {
			return transpose.Strategy{Kind: transpose.Manual, FromSong: true}, nil
		}
		offset, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return transpose.Strategy{}, fmt.Errorf("manual offset %q is not a number", value)
		}
		return transpose.Strategy{Kind: transpose.Manual, Offset: offset}, nil
	}
	return transpose.Strategy{}, fmt.Errorf("unknown transpose strategy %q (want none, optimal, high, low, auto or manual)", name)
}
