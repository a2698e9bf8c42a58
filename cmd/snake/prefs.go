package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/platform/tui"
	"github.com/vovakirdan/term-snake/internal/storage"
)

var (
	flagPrefsList  bool
	flagPrefsClear bool
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "View stored preferences",
	Long: `Show the preferences remembered between runs, such as the last
difficulty.

Examples:
  snake prefs           # Interactive view
  snake prefs --list    # Print and exit
  snake prefs --clear   # Forget everything`,
	Args: cobra.NoArgs,
	RunE: runPrefs,
}

func init() {
	prefsCmd.Flags().BoolVar(&flagPrefsList, "list", false, "Print preferences instead of opening the viewer")
	prefsCmd.Flags().BoolVar(&flagPrefsClear, "clear", false, "Delete all preferences")
}

func runPrefs(cmd *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return errors.New("no preferences database (--db is empty)")
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagPrefsClear:
		if err := store.ClearSettings(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Preferences cleared.")
		return nil

	case flagPrefsList:
		entries, err := store.Settings()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "No preferences stored.")
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(out, "%-18s %s\n", e.Key, e.Value)
		}
		return nil
	}

	w, h := terminalSize()
	return tui.RunPrefs(store, w, h)
}
