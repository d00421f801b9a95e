package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.blocks/configs/blocks.yaml or ./configs/blocks.yaml to customize.

With --resolved, print the configuration that 'blocks play' would use
after searching the config paths.

Examples:
  blocks config > ~/.blocks/configs/blocks.yaml
  blocks config --resolved`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the configuration after searching config paths")
}

func runConfig(cmd *cobra.Command, args []string) {
	if !flagResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadBlocks("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
