package player

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/burrowlab/wellflute/pkg/cli"
	"github.com/burrowlab/wellflute/pkg/flute"
	"github.com/burrowlab/wellflute/pkg/sequence"
)

// Theme defines the playback display colors.
type Theme struct {
	Primary lipgloss.Color
	Dim     lipgloss.Color
	Warn    lipgloss.Color
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
	Warn:    lipgloss.Color("#f0883e"),
}

type styles struct {
	arrow lipgloss.Style
	mod   lipgloss.Style
	dim   lipgloss.Style
	warn  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		arrow: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		mod:   lipgloss.NewStyle().Foreground(t.Primary),
		dim:   lipgloss.NewStyle().Foreground(t.Dim),
		warn:  lipgloss.NewStyle().Foreground(t.Warn),
	}
}

// TerminalTapper renders each command as one line of styled output.
type TerminalTapper struct {
	w  io.Writer
	st styles
}

// NewTerminalTapper writes to w (stdout when nil) using theme.
func NewTerminalTapper(w io.Writer, theme Theme) *TerminalTapper {
	if w == nil {
		w = os.Stdout
	}
	return &TerminalTapper{w: w, st: newStyles(theme)}
}

func (t *TerminalTapper) Tap(cmd sequence.Command) error {
	dur := t.st.dim.Render(cli.FormatDuration(cmd.DurationMS))

	switch {
	case cmd.Rest:
		_, err := fmt.Fprintf(t.w, "  %s  %s\n", t.st.dim.Render("·"), dur)
		return err
	case cmd.Direction == flute.DirectionNone:
		_, err := fmt.Fprintf(t.w, "  %s  %s\n", t.st.warn.Render("✗ out of range"), dur)
		return err
	}

	line := "  " + t.st.arrow.Render(cmd.Direction.Arrow())
	if cmd.Modifiers != 0 {
		line += "  " + t.st.mod.Render(cmd.Modifiers.String())
	}
	_, err := fmt.Fprintf(t.w, "%s  %s\n", line, dur)
	return err
}
