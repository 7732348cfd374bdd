package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/core"
	"github.com/vovakirdan/waverider/internal/games/waverider"
	"github.com/vovakirdan/waverider/internal/platform/tui"
	"github.com/vovakirdan/waverider/internal/registry"
	"github.com/vovakirdan/waverider/internal/storage"
)

var (
	flagConfig string
	flagSea    string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Set sail",
	Long: `Start a voyage in the given mode (default: waverider).

Without --sea a picker asks for the sea state first.

Controls:
  W/S, Up/Down      - Throttle ahead / astern
  A/D, Left/Right   - Rudder to port / starboard
  H/L               - Orbit camera left / right
  K/J               - Raise / lower camera
  +/-               - Zoom in / out
  P/Esc/Space       - Pause
  R                 - Restart (after the voyage ends)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Sea states:
  calm     - gentle swell
  moderate - the swell as configured
  rough    - taller, sharper crests
  storm    - the wildest preset

Examples:
  waverider play
  waverider play waverider_endless
  waverider play --sea storm
  waverider play --config ./configs/choppy.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom Waverider config YAML")
	playCmd.Flags().StringVar(&flagSea, "sea", "", "Sea state: calm, moderate, rough, storm")
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database, or returns nil so the game still runs.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "waverider"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'waverider list' to see available modes.")
		os.Exit(1)
	}

	// Fail fast on a broken config instead of sailing on defaults
	if flagConfig != "" {
		if _, err := config.LoadWaverider(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	waverider.SetConfigPath(flagConfig)

	cfg := terminalConfig()

	sea, err := config.ParseSeaState(flagSea)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !cmd.Flags().Changed("sea") {
		title, _ := registry.Title(gameID)
		picked, pickErr := tui.RunSeaStateSelector(title, sea, cfg)
		if pickErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
			os.Exit(1)
		}
		// User pressed back or quit
		if picked == nil {
			return
		}
		sea = *picked
	}
	waverider.SetSeaState(string(sea))

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	quietTerminalLogs()

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
