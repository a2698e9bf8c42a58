// snake is a terminal snake game.
//
// Usage:
//
//	snake menu              - Start menu with the difficulty slider
//	snake play              - Play one session directly
//	snake serve             - Serve the menu and game over SSH
//	snake frontends         - List available frontends
//	snake config            - Print the default configuration
//	snake prefs             - Show stored preferences
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible food placement
//	--config <path>    - Load configuration from a YAML file
//	--db <path>        - Set preferences database path (default: ~/.snake/prefs.db)
//	--log-file <path>  - Set log file path (default: ~/.snake/snake.log)
//	--sound            - Play sound cues
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/term-snake/internal/platform/raw"
	_ "github.com/vovakirdan/term-snake/internal/platform/tui"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
	flagSound    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `A snake game for the terminal. Eat food, grow, and avoid the walls
and your own tail. Difficulty sets the tick interval:
max(20, 300 - 20*difficulty) milliseconds.

Available commands:
  menu       - Interactive start menu
  play       - Play one session directly
  serve      - Start SSH server for remote play
  frontends  - Show available frontends
  config     - Print the default configuration
  prefs      - View stored preferences

Examples:
  snake menu
  snake play --difficulty hard
  snake play --frontend raw --spectate :8080
  snake serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	defaultDB, defaultLog := "", ""
	if dir := dataDir(); dir != "" {
		defaultDB = filepath.Join(dir, "prefs.db")
		defaultLog = filepath.Join(dir, "snake.log")
	}

	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDB, "Path to preferences database (empty disables it)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLog, "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues (overrides sound.enabled)")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(prefsCmd)
}
