package cli

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   float64
		want string
	}{
		{500, "500ms"},
		{999, "999ms"},
		{1000, "1.0s"},
		{1500, "1.5s"},
		{59999, "60.0s"},
		{60000, "1m0.0s"},
		{90500, "1m30.5s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.ms); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		offset float64
		want   string
	}{
		{0, "+0"},
		{3, "+3"},
		{-12, "-12"},
		{1.5, "+1.5"},
		{-2.5, "-2.5"},
	}
	for _, tt := range tests {
		if got := FormatOffset(tt.offset); got != tt.want {
			t.Errorf("FormatOffset(%v) = %q, want %q", tt.offset, got, tt.want)
		}
	}
}
