package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/burrowlab/wellflute/cmd/wellflute/internal/config"
)

var (
	// Global flags
	verbose  bool
	songsDir string

	// Global configuration (loaded at init time)
	globalConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wellflute",
	Short: "Play numbered notation on an 8-direction flute",
	Long: `wellflute - turn jianpu (numbered notation) into timed direction taps
for an 8-direction virtual flute.

The library lives in the OS config directory:
  macOS:   ~/Library/Application Support/wellflute/songs/
  Linux:   ~/.config/wellflute/songs/
  Windows: %AppData%/wellflute/songs/

Examples:
  # See what is in the library and how a song transposes
  wellflute list
  wellflute analyze "simple scale"

  # Play with the default optimal transposition, or pin one
  wellflute play "simple scale"
  wellflute play "high reach" --transpose manual=-2

  # Import photographed sheets via a vision model
  wellflute import ./sheets/ --provider gemini`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&songsDir, "songs-dir", "", "song library directory (default: config dir)")
}

// configLoadErr stores the error from config.Load() for deferred reporting.
var configLoadErr error

func initConfig() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	cfg, err := config.Load()
	if err != nil {
		// Deferred reporting: commands that need config get a clear
		// error via GetConfig(), and 'wellflute version' still works.
		configLoadErr = err
		return
	}
	globalConfig = cfg
}

// GetConfig returns the global configuration.
func GetConfig() (*config.Config, error) {
	if globalConfig == nil {
		if configLoadErr != nil {
			return nil, fmt.Errorf("config not available: %w", configLoadErr)
		}
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("config not available: %w", err)
		}
		globalConfig = cfg
	}
	return globalConfig, nil
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}

// resolveSongsDir honors the --songs-dir override.
func resolveSongsDir() (string, error) {
	if songsDir != "" {
		return songsDir, nil
	}
	cfg, err := GetConfig()
	if err != nil {
		return "", err
	}
	return cfg.SongsDir(), nil
}
