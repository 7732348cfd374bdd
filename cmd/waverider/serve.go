package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/games/waverider"
	"github.com/vovakirdan/waverider/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeConfig string
	flagServeSea    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Waverider SSH server",
	Long: `Start an SSH server that allows users to connect and sail.

Each SSH connection gets its own session with a mode and sea state picker.
Scores and the voyage log are stored per-server (all users share them).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.waverider/host_key

Examples:
  waverider serve                           # Listen on :23234 with auto-generated key
  waverider serve --ssh :2222               # Listen on port 2222
  waverider serve --host-key ./my_host_key  # Use specific host key
  waverider serve --sea rough               # Preselect rough seas

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom Waverider config YAML")
	serveCmd.Flags().StringVar(&flagServeSea, "sea", "", "Sea state preselected in the picker")
}

func runServe(_ *cobra.Command, _ []string) {
	sea, err := config.ParseSeaState(flagServeSea)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagServeConfig != "" {
		if _, err := config.LoadWaverider(flagServeConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	waverider.SetConfigPath(flagServeConfig)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		SeaState:    sea,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Waverider SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
