package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilematch/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the rules and timing the game would use, after the config
search (--config, ~/.tilematch/configs, ./configs, built-in defaults),
the difficulty preset and --theme are applied.

Examples:
  tilematch config
  tilematch config --difficulty hard
  tilematch config --defaults > ~/.tilematch/configs/tilematch.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default file with comments")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := effectiveConfig()
	if err != nil {
		exitf("Error: %v\n", err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		exitf("Error encoding config: %v\n", err)
	}
	enc.Close()
}
