package config

import (
	_ "embed"

	"github.com/vovakirdan/term-snake/internal/games/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Height: snake.DefaultHeight,
			Width:  snake.DefaultWidth,
		},
		Difficulty: DifficultyConfig{
			Default:      snake.DefaultDifficulty,
			SliderLength: 14,
		},
		Loop: LoopConfig{
			PollRate: 250,
		},
	}
}

// DefaultYAML returns the embedded default YAML, used by `snake config`.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
