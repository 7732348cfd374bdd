package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/ocean"
)

var (
	flagWavesConfig string
	flagWavesSea    string
	flagWavesDump   bool
)

var wavesCmd = &cobra.Command{
	Use:   "waves",
	Short: "Show the configured wave components",
	Long: `Load the configuration the game would use and list its wave
components after the sea state is applied.

With --dump the full effective configuration is printed as YAML instead,
which is a convenient starting point for a custom config file.

Examples:
  waverider waves
  waverider waves --sea storm
  waverider waves --config ./configs/choppy.yaml
  waverider waves --dump > ~/.waverider/configs/waverider.yaml`,
	Args: cobra.NoArgs,
	RunE: runWaves,
}

func init() {
	wavesCmd.Flags().StringVar(&flagWavesConfig, "config", "", "Path to custom Waverider config YAML")
	wavesCmd.Flags().StringVar(&flagWavesSea, "sea", "", "Sea state: calm, moderate, rough, storm")
	wavesCmd.Flags().BoolVar(&flagWavesDump, "dump", false, "Print the effective config as YAML")
}

// loadSea loads the config and applies the sea state, as a voyage would.
func loadSea(path, seaName string) (config.WaveriderConfig, config.SeaState, error) {
	sea, err := config.ParseSeaState(seaName)
	if err != nil {
		return config.WaveriderConfig{}, sea, err
	}
	cfg, err := config.LoadWaverider(path)
	if err != nil {
		return cfg, sea, err
	}
	config.ApplySeaState(&cfg, sea)
	return cfg, sea, nil
}

func runWaves(_ *cobra.Command, _ []string) error {
	cfg, sea, err := loadSea(flagWavesConfig, flagWavesSea)
	if err != nil {
		return err
	}

	if flagWavesDump {
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	field, err := cfg.WaveField()
	if err != nil {
		return err
	}

	fmt.Println(renderWaves(field, sea))
	return nil
}

// renderWaves formats the components of a field as a table.
func renderWaves(field *ocean.WaveField, sea config.SeaState) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("#", "Amplitude", "Frequency", "Wavelength", "Speed", "Direction", "Steepness")

	for i, c := range field.Components() {
		t.Row(
			strconv.Itoa(i),
			fmt.Sprintf("%.2f", c.Amplitude),
			fmt.Sprintf("%.3f", c.Frequency),
			fmt.Sprintf("%.1f", c.Wavelength()),
			fmt.Sprintf("%.2f", c.Speed),
			fmt.Sprintf("(%.2f, %.2f)", c.Direction.X, c.Direction.Z),
			fmt.Sprintf("%.2f", c.Steepness),
		)
	}

	title := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Sea: %s  |  %d waves  |  max height ±%.2f",
		sea.Title(), field.Len(), field.AmplitudeSum()))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render())
}
