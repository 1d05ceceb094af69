// Package registry holds the playable modes of the tower.
// Each mode registers a factory from init(), so the CLI and the SSH server
// can list and start modes without importing the game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pillow-tower/internal/core"
)

// Game is what the platform drives: a fixed-tick simulation that renders
// into a cell buffer. It never talks to the terminal itself.
type Game interface {
	// ID is the mode identifier ("pillow", "pillow-hard"), also used as the
	// score table key.
	ID() string

	// Title is shown in menus and the scoreboard.
	Title() string

	// Reset starts a fresh run for the given viewport and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the input gathered since the last tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize without
// restarting the run.
type Resizer interface {
	Resize(cols, rows int)
}

// GameInfo contains metadata about a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a mode.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return f(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
