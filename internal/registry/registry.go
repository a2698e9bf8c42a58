// Package registry provides a global registry for snake frontends.
// Frontends register themselves in init() functions, allowing the commands
// to pick one by name without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/games/snake"
)

// SessionSpec is everything a frontend needs to run one session.
type SessionSpec struct {
	Runtime core.RuntimeConfig
	Options snake.Options
	// Hooks are called in addition to the frontend's own drawing.
	Hooks  snake.Hooks
	Logger *log.Logger
}

// Frontend runs a session on some display and input device.
type Frontend interface {
	// ID returns a unique identifier used on the command line (e.g. "tui").
	ID() string

	// Title returns a human-readable description.
	Title() string

	// Play runs one session to completion and returns its result.
	// Cancelling ctx ends the session as a quit.
	Play(ctx context.Context, spec SessionSpec) (snake.Result, error)
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a frontend.
type Factory func() Frontend

// Default is the frontend used when none is requested.
const Default = "tui"

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend package's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a frontend by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
