// Package song defines the song record and the on-disk library of songs.
package song

import "strings"

// Song is one melody definition. Immutable once loaded; the conversion
// pipeline treats it as read-only.
type Song struct {
	Name string `yaml:"name" json:"name"`
	BPM  int    `yaml:"bpm" json:"bpm"`

	// Jianpu holds the notation lines. A line may contain several bars
	// separated by '|'.
	Jianpu []string `yaml:"jianpu" json:"jianpu"`

	// Offset is the sheet's stored transposition in semitones, used by
	// the "manual song" strategy. Nil when the sheet has none.
	Offset *float64 `yaml:"offset,omitempty" json:"offset,omitempty"`

	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Key returns the library key for the song: lowercased, spaces replaced
// with underscores.
func (s *Song) Key() string {
	return strings.ReplaceAll(strings.ToLower(s.Name), " ", "_")
}

// BarTexts flattens the notation lines into individual bar strings,
// splitting on the '|' separator and dropping empty segments.
func (s *Song) BarTexts() []string {
	var bars []string
	for _, line := range s.Jianpu {
		for _, part := range strings.Split(line, "|") {
			if strings.TrimSpace(part) != "" {
				bars = append(bars, strings.TrimSpace(part))
			}
		}
	}
	return bars
}
