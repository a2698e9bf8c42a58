package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/audio"
	"github.com/vovakirdan/term-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Open the start menu: Play, a Difficulty slider and Exit.

Navigation:
  Up/Down     - Move selection
  Enter       - Play, or engage/commit the slider
  Left/Right  - Move the engaged slider
  Esc         - Revert the slider, or exit
  Tab         - Preferences

After a session ends the menu returns with its result.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	return tui.RunApp(tui.AppOptions{
		Config:  e.cfg,
		Runtime: e.runtime(),
		Store:   e.store,
		Logger:  e.logger,
		Hooks:   audio.Hooks(e.cues),
	})
}
