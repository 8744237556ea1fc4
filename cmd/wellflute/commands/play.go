package commands

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/burrowlab/wellflute/pkg/cli"
	"github.com/burrowlab/wellflute/pkg/player"
	"github.com/burrowlab/wellflute/pkg/sequence"
	"github.com/burrowlab/wellflute/pkg/song"
)

var (
	playTranspose string
	playBPM       int
	playReady     int
)

var playCmd = &cobra.Command{
	Use:   "play <song>",
	Short: "Play a song as timed direction taps",
	Long: `Play converts a library song into direction commands and paces them in
real time. A countdown runs first so you can focus the target window.

Examples:
  wellflute play "simple scale"
  wellflute play high_reach --transpose manual=song
  wellflute play high_reach --transpose auto=low --bpm 60`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strat, err := ParseStrategy(playTranspose)
		if err != nil {
			return err
		}
		dir, err := resolveSongsDir()
		if err != nil {
			return err
		}
		lib, err := song.Open(dir, slog.Default())
		if err != nil {
			return err
		}
		s, err := lib.Get(args[0])
		if err != nil {
			return err
		}
		if playBPM > 0 {
			override := *s
			override.BPM = playBPM
			s = &override
		}

		cmds, diag, err := sequence.Convert(s, strat)
		if err != nil {
			return err
		}

		fmt.Printf("%s  %d bpm  transpose %s (%s)\n",
			s.Name, s.BPM, cli.FormatOffset(diag.Offset), diag.Strategy)
		if n := len(diag.Unplayable); n > 0 {
			cli.PrintWarning("%d note(s) out of range will be skipped silently", n)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		p := &player.Player{
			Tapper: player.NewTerminalTapper(os.Stdout, player.DefaultTheme),
			Logger: slog.Default(),
		}
		if playReady > 0 {
			if err := p.Countdown(ctx, playReady, func(r int) {
				fmt.Printf("\rstarting in %d... ", r)
			}); err != nil {
				fmt.Println()
				return err
			}
			fmt.Print("\r                  \r")
		}
		if err := p.Play(ctx, cmds); err != nil {
			return err
		}
		cli.PrintSuccess("done")
		return nil
	},
}

func init() {
	playCmd.Flags().StringVarP(&playTranspose, "transpose", "t", "optimal",
		"transposition: none, optimal, high, low, auto[=pref], manual=<offset|song>")
	playCmd.Flags().IntVar(&playBPM, "bpm", 0, "override the song's tempo")
	playCmd.Flags().IntVar(&playReady, "ready", 5, "countdown seconds before the first tap")
	rootCmd.AddCommand(playCmd)
}
