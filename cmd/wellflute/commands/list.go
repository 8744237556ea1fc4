package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/burrowlab/wellflute/pkg/cli"
	"github.com/burrowlab/wellflute/pkg/song"
)

var (
	listFormat string
	listJQ     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the song library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveSongsDir()
		if err != nil {
			return err
		}
		lib, err := song.Open(dir, slog.Default())
		if err != nil {
			return err
		}
		return cli.Output(lib.List(), cli.OutputOptions{
			Format: cli.OutputFormat(listFormat),
			JQ:     listJQ,
			Writer: cmd.OutOrStdout(),
		})
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "o", "yaml", "output format (yaml, json)")
	listCmd.Flags().StringVar(&listJQ, "jq", "", "jq filter applied to the output")
	rootCmd.AddCommand(listCmd)
}
