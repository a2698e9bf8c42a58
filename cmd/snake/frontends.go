package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List available frontends",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available frontends:")
		fmt.Fprintln(out)
		for _, f := range registry.List() {
			marker := " "
			if f.ID == registry.Default {
				marker = "*"
			}
			fmt.Fprintf(out, " %s %-8s %s\n", marker, f.ID, f.Title)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Use 'snake play --frontend <id>' to pick one.")
	},
}
