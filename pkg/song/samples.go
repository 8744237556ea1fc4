package song

// SampleSongs returns the built-in songs that are always available,
// songs-directory or not.
func SampleSongs() []*Song {
	return []*Song{
		{
			Name:        "Simple Scale",
			BPM:         120,
			Description: "One octave up and back, a warm-up exercise.",
			Jianpu: []string{
				"1 2 3 4 | 5 6 7 h1",
				"h1 7 6 5 | 4 3 2 1",
			},
		},
		{
			Name:        "High Reach",
			BPM:         90,
			Description: "Climbs past the native range; useful for trying transposition strategies.",
			Offset:      ptrFloat(-2),
			Jianpu: []string{
				"5 6 7 h1 | h2 h1 7 5",
				"(5 6) 7d - | h2 - 0 l7",
			},
		},
	}
}

func ptrFloat(v float64) *float64 { return &v }
