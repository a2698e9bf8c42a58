package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/term-snake/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the default configuration YAML. Save it to
~/.snake/configs/snake.yaml or ./configs/snake.yaml to customise it.

With --resolved, print the configuration actually loaded instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if !flagResolved {
			_, err := out.Write(config.DefaultYAML())
			return err
		}

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(cfg)
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the loaded configuration")
}
