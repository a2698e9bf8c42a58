package config

import (
	"fmt"
	"strconv"
	"strings"
)

// DifficultyPreset is a named starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyInsane DifficultyPreset = "insane"
)

// presetLevels maps presets to slider values.
var presetLevels = map[DifficultyPreset]int{
	DifficultyEasy:   1,
	DifficultyNormal: 5,
	DifficultyHard:   10,
	DifficultyInsane: 14,
}

// LevelForPreset returns the difficulty for a preset, and false if the
// preset is unknown.
func LevelForPreset(preset DifficultyPreset) (int, bool) {
	lvl, ok := presetLevels[preset]
	return lvl, ok
}

// ParseDifficulty accepts a preset name or a non-negative integer.
func ParseDifficulty(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if lvl, ok := LevelForPreset(DifficultyPreset(s)); ok {
		return lvl, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard, insane or a number)", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("config: difficulty must not be negative, got %d", n)
	}
	return n, nil
}
