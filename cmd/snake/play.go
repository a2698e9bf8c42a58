package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/audio"
	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/games/snake"
	"github.com/vovakirdan/term-snake/internal/registry"
	"github.com/vovakirdan/term-snake/internal/spectate"
)

var (
	flagDifficulty string
	flagFrontend   string
	flagSpectate   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one session",
	Long: `Start a session directly, skipping the menu.

Controls:
  Arrows, WASD, HJKL  - Turn
  Esc/Q/Ctrl+C        - Quit

Difficulty is a non-negative integer or a preset:
  easy   - 1  (280ms per tick)
  normal - 5  (200ms per tick)
  hard   - 10 (100ms per tick)
  insane - 14 (20ms per tick, the floor)
Without --difficulty the last difficulty chosen is used.

Examples:
  snake play
  snake play --difficulty 7
  snake play --frontend raw
  snake play --spectate :8080   # watch at ws://localhost:8080/watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty level or preset: easy, normal, hard, insane")
	playCmd.Flags().StringVar(&flagFrontend, "frontend", registry.Default, "Frontend to play on (see 'snake frontends')")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return fmt.Errorf("%w (run 'snake frontends' to list them)", err)
	}

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	difficulty, err := resolveDifficulty(e)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	hooks := []snake.Hooks{audio.Hooks(e.cues)}
	if flagSpectate != "" {
		hub := spectate.NewHub(e.logger)
		defer hub.Close()
		go func() {
			if err := hub.Serve(ctx, flagSpectate); err != nil {
				e.logger.Warn("spectator feed stopped", "error", err)
			}
		}()
		hooks = append(hooks, hub.Hooks())
	}

	rt := e.runtime()
	result, err := frontend.Play(ctx, registry.SessionSpec{
		Runtime: rt,
		Options: snake.Options{
			Board:        e.cfg.GameBoard(),
			Difficulty:   difficulty,
			Seed:         rt.Seed,
			FoodAttempts: e.cfg.Food.MaxAttempts,
		},
		Hooks:  snake.Join(hooks...),
		Logger: e.logger,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), describeResult(result))
	return nil
}

// resolveDifficulty returns the --difficulty value, remembering it, or
// the stored one.
func resolveDifficulty(e *env) (int, error) {
	if flagDifficulty == "" {
		if e.store == nil {
			return e.cfg.Difficulty.Default, nil
		}
		d, err := e.store.LastDifficulty(e.cfg.Difficulty.Default)
		if err != nil {
			e.logger.Warn("could not read last difficulty", "error", err)
		}
		return d, nil
	}

	d, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return 0, err
	}
	if e.store != nil {
		if err := e.store.SaveLastDifficulty(d); err != nil {
			e.logger.Warn("could not save difficulty", "error", err)
		}
	}
	return d, nil
}

func describeResult(r snake.Result) string {
	var how string
	switch r.Reason {
	case snake.ReasonCollision:
		how = "Crashed"
	case snake.ReasonBoardFull:
		how = "Board full, you win"
	default:
		how = "Quit"
	}
	return fmt.Sprintf("%s. Score %d, length %d after %d ticks at difficulty %d.",
		how, r.Score, r.Length, r.Ticks, r.Difficulty)
}
