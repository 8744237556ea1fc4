package cli

import "fmt"

// FormatDuration formats milliseconds to human readable string
func FormatDuration(ms float64) string {
	if ms < 1000 {
		return fmt.Sprintf("%.0fms", ms)
	}
	secs := ms / 1000
	if secs < 60 {
		return fmt.Sprintf("%.1fs", secs)
	}
	mins := int(secs / 60)
	secs = secs - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}

// FormatOffset renders a transposition offset in semitones with an
// explicit sign, keeping half-semitone steps readable ("+1.5", "-2").
func FormatOffset(offset float64) string {
	if offset == float64(int(offset)) {
		return fmt.Sprintf("%+d", int(offset))
	}
	return fmt.Sprintf("%+.1f", offset)
}
