package commands

import (
	"github.com/spf13/cobra"

	"github.com/burrowlab/wellflute/pkg/cli"
	"github.com/burrowlab/wellflute/pkg/sheetimport"
)

var aiStatusCmd = &cobra.Command{
	Use:   "ai-status",
	Short: "Show sheet recognition provider status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		creds, err := cfg.Credentials()
		if err != nil {
			return err
		}
		type status struct {
			Provider   string `yaml:"provider" json:"provider"`
			Configured bool   `yaml:"configured" json:"configured"`
		}
		var rows []status
		for _, name := range sheetimport.ProviderNames() {
			rows = append(rows, status{
				Provider:   name,
				Configured: creds.APIKey(name) != "",
			})
		}
		return cli.Output(rows, cli.OutputOptions{Writer: cmd.OutOrStdout()})
	},
}

func init() {
	rootCmd.AddCommand(aiStatusCmd)
}
