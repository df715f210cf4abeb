package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagListPresets bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration after the search path, --config and
--difficulty have been applied. The output is valid YAML and can be
saved to ~/.flappy/configs/flappy.yaml as a starting point.

Examples:
  flappy config
  flappy config --difficulty hard
  flappy config --presets`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagListPresets, "presets", false, "List difficulty presets")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagListPresets {
		for _, p := range config.Presets() {
			fmt.Println(p)
		}
		return
	}

	cfg, err := config.Load(flagConfig, flagDifficulty)
	if err != nil {
		fail("loading config: %v", err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fail("encoding config: %v", err)
	}
	enc.Close()
}
