// Package config provides YAML-based configuration loading for the snake
// game and the named difficulty presets accepted on the command line.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/term-snake/internal/games/snake"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Loop       LoopConfig       `yaml:"loop"`
	Food       FoodConfig       `yaml:"food"`
	Sound      SoundConfig      `yaml:"sound"`
}

// BoardConfig defines the playfield size, wall included.
type BoardConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// DifficultyConfig defines the starting difficulty and the menu slider range.
type DifficultyConfig struct {
	Default      int `yaml:"default"`
	SliderLength int `yaml:"slider_length"`
}

// LoopConfig defines how often the interactive frontend polls for input.
type LoopConfig struct {
	PollRate int `yaml:"poll_rate"` // Polls per second
}

// FoodConfig defines food placement.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // 0 = derived from the board
}

// SoundConfig toggles audio cues.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}

// GameBoard returns the configured board.
func (c SnakeConfig) GameBoard() snake.Board {
	return snake.Board{Height: c.Board.Height, Width: c.Board.Width}
}

// Validate reports the first unusable value.
func (c SnakeConfig) Validate() error {
	if err := c.GameBoard().Validate(); err != nil {
		return fmt.Errorf("config: invalid board: %w", err)
	}
	if c.Difficulty.SliderLength < 1 {
		return fmt.Errorf("config: difficulty.slider_length must be at least 1, got %d", c.Difficulty.SliderLength)
	}
	if c.Difficulty.Default < 0 {
		return fmt.Errorf("config: difficulty.default must not be negative, got %d", c.Difficulty.Default)
	}
	if c.Loop.PollRate < 1 {
		return fmt.Errorf("config: loop.poll_rate must be positive, got %d", c.Loop.PollRate)
	}
	if c.Food.MaxAttempts < 0 {
		return errors.New("config: food.max_attempts must not be negative")
	}
	return nil
}
