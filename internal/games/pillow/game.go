// Package pillow runs the tower engine as a terminal game.
// It converts ticks, keys and mouse cells into engine calls and draws the
// engine snapshot into the platform's cell buffer.
package pillow

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pillow-tower/internal/config"
	"github.com/vovakirdan/pillow-tower/internal/core"
	"github.com/vovakirdan/pillow-tower/internal/registry"
	"github.com/vovakirdan/pillow-tower/internal/tower"
)

// Minimum playable terminal size.
const (
	MinCols = 24
	MinRows = 12
)

// cameraEase is the share of the remaining scroll distance covered per tick.
const cameraEase = 0.12

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
	player           SoundPlayer = mute{}
)

// SoundPlayer plays named cues. Implementations must not block.
type SoundPlayer interface {
	Play(cue string)
}

type mute struct{}

func (mute) Play(string) {}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset used by the classic mode. Unknown names
// clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// SetLogger routes game logs. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetAudio routes cues to a player. A nil player mutes the game.
func SetAudio(p SoundPlayer) {
	if p == nil {
		p = mute{}
	}
	player = p
}

// Mode is a registered flavour of the game.
type Mode struct {
	ID     string
	Title  string
	Preset config.DifficultyPreset // Empty uses the CLI preset
}

// Modes lists every registered mode.
var Modes = []Mode{
	{ID: "pillow", Title: "Pillow Tower"},
	{ID: "pillow-easy", Title: "Pillow Tower (Easy)", Preset: config.DifficultyEasy},
	{ID: "pillow-hard", Title: "Pillow Tower (Hard)", Preset: config.DifficultyHard},
	{ID: "pillow-steady", Title: "Pillow Tower (Steady)", Preset: config.DifficultyFixed},
}

// Game adapts a tower.Engine to registry.Game.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.PillowConfig
	scale   core.CellScale

	engine     *tower.Engine
	difficulty *config.DifficultyManager
	baseParams tower.Params

	now      float64 // Simulated milliseconds, pauses excluded
	ticks    int
	scroll   float64
	paused   bool
	feathers int
	misses   int
	events   []string

	tooSmall bool
}

// New creates a game in the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the mode identifier.
func (g *Game) ID() string { return g.mode.ID }

// Title returns the display name.
func (g *Game) Title() string { return g.mode.Title }

func (g *Game) preset() config.DifficultyPreset {
	if g.mode.Preset != "" {
		return g.mode.Preset
	}
	return difficultyPreset
}

// loadConfig reads the YAML config and applies the preset. Load errors fall
// back to the built-in defaults.
func (g *Game) loadConfig() config.PillowConfig {
	cfg, err := config.LoadPillow(configPath)
	if err != nil {
		logger.Warn("config rejected, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultPillowConfig()
	}
	if p := g.preset(); p != "" {
		config.ApplyPillowPreset(&cfg, p)
	}
	return cfg
}

// Reset starts a new run. The engine is rebuilt so config edits and a new
// seed take effect.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.scale = core.CellScale{CellW: g.cfg.Display.CellWidth, CellH: g.cfg.Display.CellHeight}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.baseParams = g.cfg.Params()

	w, h := g.scale.ScreenPixels(runtime.ScreenW, runtime.ScreenH)
	engine, err := tower.NewEngine(g.baseParams, w, h, runtime.Seed)
	if err != nil {
		logger.Error("invalid tower parameters, using defaults", "err", err)
		g.cfg = config.DefaultPillowConfig()
		g.baseParams = g.cfg.Params()
		engine, _ = tower.NewEngine(g.baseParams, w, h, runtime.Seed)
	}
	engine.SetListener(tower.ListenerFunc(g.onEvent))
	g.engine = engine

	g.now = 0
	g.ticks = 0
	g.scroll = 0
	g.paused = false
	g.feathers = 0
	g.misses = 0
	g.events = nil
	g.tooSmall = runtime.ScreenW < MinCols || runtime.ScreenH < MinRows

	logger.Info("run started", "mode", g.mode.ID, "seed", runtime.Seed,
		"cols", runtime.ScreenW, "rows", runtime.ScreenH, "lives", g.engine.Lives())
}

// Restart begins a new run with the same seed and viewport, keeping the engine.
func (g *Game) Restart() {
	g.engine.SetScrollOffset(0)
	g.engine.Reset()
	g.now, g.ticks, g.scroll = 0, 0, 0
	g.paused = false
	g.feathers, g.misses = 0, 0
	logger.Info("run restarted", "mode", g.mode.ID)
}

// Resize follows a terminal resize without restarting the run.
func (g *Game) Resize(cols, rows int) {
	if g.engine == nil {
		return
	}
	g.runtime.ScreenW, g.runtime.ScreenH = cols, rows
	g.tooSmall = cols < MinCols || rows < MinRows
	w, h := g.scale.ScreenPixels(cols, rows)
	g.engine.Resize(w, h)
	logger.Debug("viewport resized", "cols", cols, "rows", rows)
}

// Step advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if in.Has(core.ActionRestart) && g.engine.GameOver() {
		g.Restart()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) && !g.engine.GameOver() {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if !g.engine.GameOver() {
		g.applyInput(in)
		g.applyDifficulty()
	}

	dt := g.runtime.TickMillis()
	g.now += dt
	g.ticks++
	g.engine.Tick(dt, g.now)
	g.followCamera()

	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) applyInput(in core.InputFrame) {
	for _, p := range in.Pointer {
		x, y := g.scale.ToPixels(p.Col, p.Row)
		switch p.Kind {
		case core.PointerDown:
			g.engine.PointerDown(x, y)
		case core.PointerMove:
			g.engine.PointerMove(x, y)
		case core.PointerUp:
			g.engine.PointerUp()
		}
	}

	if in.Has(core.ActionDrop) {
		s := g.engine.Snapshot()
		if s.HasFloating {
			frame := g.engine.Frame()
			g.engine.PointerDown(s.Floating.X, frame.SceneToScreenY(s.Floating.Y))
			g.engine.PointerUp()
		}
	}

	if in.Has(core.ActionFeathers) {
		g.engine.QueueFeatherBurst(g.cfg.Gameplay.FeatherBurst, g.now)
	}
}

// applyDifficulty scales the sway with the tower height.
func (g *Game) applyDifficulty() {
	score := g.engine.StackSize()
	p := g.baseParams
	p.SwayAngle = g.difficulty.Sway(g.baseParams.SwayAngle, score, g.ticks)
	p.SwaySpeed = g.difficulty.Speed(g.baseParams.SwaySpeed, score, g.ticks)
	if p == g.engine.Params() {
		return
	}
	if err := g.engine.SetParams(p); err != nil {
		logger.Warn("difficulty change rejected", "err", err)
		return
	}
	logger.Debug("difficulty", "level", g.difficulty.Level(score, g.ticks),
		"sway", p.SwayAngle, "speed", p.SwaySpeed)
}

// followCamera keeps the tower top at least follow_margin below the top edge.
func (g *Game) followCamera() {
	target := math.Max(0, g.cfg.Display.FollowMargin-g.engine.TowerTop())
	g.scroll += (target - g.scroll) * cameraEase
	if math.Abs(target-g.scroll) < 0.5 {
		g.scroll = target
	}
	g.engine.SetScrollOffset(g.scroll)
}

func (g *Game) onEvent(ev tower.Event) {
	if ev.Kind == tower.EventCue {
		player.Play(string(ev.Cue))
		return
	}
	g.events = append(g.events, ev.String())

	switch ev.Kind {
	case tower.EventLanded:
		logger.Info("pillow landed", "stack", ev.StackSize)
	case tower.EventMissed:
		g.misses++
		logger.Info("pillow missed", "lives", ev.Lives)
	case tower.EventGameOver:
		logger.Info("game over", "mode", g.mode.ID, "stack", g.engine.StackSize(),
			"feathers", g.feathers, "elapsed", g.elapsed())
	case tower.EventFeatherCollected:
		g.feathers++
		logger.Debug("feather collected", "count", ev.Feathers, "width", ev.Width, "height", ev.Height)
	case tower.EventLineCut:
		logger.Debug("line cut", "y", ev.Y)
	case tower.EventDeflected:
		logger.Debug("pillow deflected", "spin", ev.Spin)
	case tower.EventSpawned:
		logger.Debug("pillow spawned")
	}
}

func (g *Game) elapsed() time.Duration {
	return time.Duration(g.now * float64(time.Millisecond))
}

// State reports the run status. Score is the tower height in pillows.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.StackSize(),
		Lives:    g.engine.Lives(),
		Feathers: g.feathers,
		Misses:   g.misses,
		Elapsed:  g.elapsed(),
		GameOver: g.engine.GameOver(),
		Paused:   g.paused,
	}
}

// Snapshot exposes the engine state to autoplayers and tests.
func (g *Game) Snapshot() tower.Snapshot {
	return g.engine.Snapshot()
}

// Scale returns the cell-to-pixel mapping in use.
func (g *Game) Scale() core.CellScale { return g.scale }

func init() {
	for _, m := range Modes {
		registry.Register(m.ID, func() registry.Game { return New(m) })
	}
}
