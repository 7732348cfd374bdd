// waverider is a terminal sailing game: steer a boat over a Gerstner-wave
// ocean and collect the debris drifting around it.
//
// Usage:
//
//	waverider list              - List game modes
//	waverider play [mode]       - Set sail (default: waverider)
//	waverider menu              - Pick a mode and sea state interactively
//	waverider serve             - Start SSH server for remote play
//	waverider scores <mode>     - Show high scores and voyage totals
//	waverider waves             - Show the configured wave components
//	waverider sample <x> <z>    - Sample the ocean surface at a point
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible voyages
//	--db <path>         - Set database path (default: ~/.waverider/scores.db)
//	--log-level <level> - debug, info, warn or error (default: warn)
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/waverider/internal/games/waverider"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

// logFile is the open --log-file, closed on exit.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "waverider",
	Short: "Waverider - sail a wave-tossed sea in your terminal",
	Long: `Waverider is a terminal sailing game. Steer a small boat across an
ocean of summed Gerstner waves, watch it pitch and roll over the swell,
and collect the debris that drifts in from the horizon.

Available commands:
  list     - Show the game modes
  play     - Set sail directly
  menu     - Interactive mode and sea state picker
  serve    - Start SSH server for remote play
  scores   - View high scores and voyage totals
  waves    - Inspect the wave configuration
  sample   - Sample the ocean surface at a point

Examples:
  waverider play
  waverider play waverider_endless --sea storm
  waverider menu
  waverider serve --ssh :2222
  waverider sample 10 -4 --time 3`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.waverider/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(wavesCmd)
	rootCmd.AddCommand(sampleCmd)
}

// setupLogging configures the default charmbracelet logger from the global flags.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := os.Stderr
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	log.SetDefault(log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "waverider",
	}))
	return nil
}

// quietTerminalLogs keeps warnings from drawing over a full-screen TUI:
// without --log-file, logs go to ~/.waverider/waverider.log while it runs.
func quietTerminalLogs() {
	if flagLogFile != "" || logFile != nil {
		return
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	flagLogFile = filepath.Join(home, ".waverider", "waverider.log")
	if err := setupLogging(nil, nil); err != nil {
		flagLogFile = ""
	}
}
