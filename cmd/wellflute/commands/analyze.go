package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/burrowlab/wellflute/pkg/cli"
	"github.com/burrowlab/wellflute/pkg/score"
	"github.com/burrowlab/wellflute/pkg/sequence"
	"github.com/burrowlab/wellflute/pkg/song"
	"github.com/burrowlab/wellflute/pkg/transpose"
)

var (
	analyzeFormat string
	analyzeJQ     string
)

// analysisReport is the analyze command's output document.
type analysisReport struct {
	Name       string           `yaml:"name" json:"name"`
	BPM        int              `yaml:"bpm" json:"bpm"`
	Notes      int              `yaml:"notes" json:"notes"`
	Range      analysisRange    `yaml:"range" json:"range"`
	Strategies []strategyReport `yaml:"strategies" json:"strategies"`
}

type analysisRange struct {
	Min     float64 `yaml:"min" json:"min"`
	Max     float64 `yaml:"max" json:"max"`
	Span    float64 `yaml:"span" json:"span"`
	Octaves float64 `yaml:"octaves" json:"octaves"`
}

type strategyReport struct {
	Strategy   string  `yaml:"strategy" json:"strategy"`
	Offset     float64 `yaml:"offset" json:"offset"`
	Unplayable int     `yaml:"unplayable" json:"unplayable"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <song>",
	Short: "Show a song's range and transposition report",
	Long: `Analyze reports the pitch range of a song and what every automatic
transposition strategy would choose for it, with the number of notes
each choice leaves out of range.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		events, err := sequence.Events(s)
		if err != nil {
			return err
		}

		r := score.Range(events)
		report := analysisReport{
			Name:  s.Name,
			BPM:   s.BPM,
			Notes: r.NoteCount,
			Range: analysisRange{Min: r.Min, Max: r.Max, Span: r.Span, Octaves: r.Octaves()},
		}

		strategies := []transpose.Strategy{
			{Kind: transpose.None},
			{Kind: transpose.Optimal},
			{Kind: transpose.High},
			{Kind: transpose.Low},
		}
		if s.Offset != nil {
			strategies = append(strategies, transpose.Strategy{Kind: transpose.Manual, FromSong: true})
		}
		for _, strat := range strategies {
			res, err := transpose.Choose(events, strat, s.Offset)
			if err != nil {
				return fmt.Errorf("strategy %s: %w", strat.Kind, err)
			}
			report.Strategies = append(report.Strategies, strategyReport{
				Strategy:   res.Strategy.String(),
				Offset:     res.Offset,
				Unplayable: res.Unplayable,
			})
		}

		return cli.Output(report, cli.OutputOptions{
			Format: cli.OutputFormat(analyzeFormat),
			JQ:     analyzeJQ,
			Writer: cmd.OutOrStdout(),
		})
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "o", "yaml", "output format (yaml, json)")
	analyzeCmd.Flags().StringVar(&analyzeJQ, "jq", "", "jq filter applied to the output")
	rootCmd.AddCommand(analyzeCmd)
}
