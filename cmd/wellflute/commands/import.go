package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/burrowlab/wellflute/pkg/cli"
	"github.com/burrowlab/wellflute/pkg/sheetimport"
)

var (
	importProvider  string
	importOutputDir string
	importNoCache   bool
)

var importCmd = &cobra.Command{
	Use:   "import <image|dir>...",
	Short: "Recognize sheet images into library songs",
	Long: `Import sends sheet images to a vision model and writes the recognized
songs into the library. Images in the same directory are read as
consecutive pages of one piece, ordered by filename.

Recognition results are cached by image content, so re-running an
import is free. Use --no-cache to force fresh recognition.

API keys come from credentials.yaml in the config directory or from
the GEMINI_API_KEY / ARK_API_KEY environment variables.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		creds, err := cfg.Credentials()
		if err != nil {
			return err
		}
		provider, err := sheetimport.NewProvider(cmd.Context(), importProvider, creds.APIKey(importProvider))
		if err != nil {
			return err
		}

		var cache *sheetimport.Cache
		if !importNoCache {
			cache, err = sheetimport.OpenCache(cfg.CacheDir())
			if err != nil {
				// A broken cache only costs API quota, not correctness.
				cli.PrintWarning("recognition cache unavailable: %v", err)
				cache = nil
			} else {
				defer cache.Close()
			}
		}

		outDir := importOutputDir
		if outDir == "" {
			if outDir, err = resolveSongsDir(); err != nil {
				return err
			}
		}

		im := &sheetimport.Importer{
			Provider:  provider,
			Cache:     cache,
			OutputDir: outDir,
			Logger:    slog.Default(),
		}
		results, err := im.Run(cmd.Context(), args)
		for _, r := range results {
			cli.PrintSuccess("%s (%d bpm) -> %s", r.Song.Name, r.Song.BPM, r.Path)
			if r.Cached {
				cli.PrintInfo("served from recognition cache")
			}
			for _, w := range r.Warnings {
				cli.PrintWarning("%s", w)
			}
		}
		return err
	},
}

func init() {
	importCmd.Flags().StringVarP(&importProvider, "provider", "p", "gemini", "recognition provider (gemini, ark)")
	importCmd.Flags().StringVar(&importOutputDir, "output-dir", "", "write songs here instead of the library")
	importCmd.Flags().BoolVar(&importNoCache, "no-cache", false, "skip the recognition cache")
	rootCmd.AddCommand(importCmd)
}
