package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/games/waverider"
	"github.com/vovakirdan/waverider/internal/platform/tui"
	"github.com/vovakirdan/waverider/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Waverider with a mode and sea state picker",
	Long: `Start Waverider in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, then pick the
sea state. After a voyage ends, you return to the menu to sail again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard and voyage log
  Esc          - Back
  Q            - Quit

Examples:
  waverider menu
  waverider menu --fps 20
  waverider menu --config ./configs/choppy.yaml`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom Waverider config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := terminalConfig()
	waverider.SetConfigPath(flagConfig)
	quietTerminalLogs()

	sea := config.SeaModerate

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		title, _ := registry.Title(gameID)
		picked, err := tui.RunSeaStateSelector(title, sea, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		// User pressed back or quit
		if picked == nil {
			continue
		}
		sea = *picked
		waverider.SetSeaState(string(sea))

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each voyage unless one was fixed
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
