package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pillow-tower/internal/core"
	_ "github.com/vovakirdan/pillow-tower/internal/games/pillow"
	"github.com/vovakirdan/pillow-tower/internal/storage"
)

// scriptedGame ends after a fixed number of steps.
type scriptedGame struct {
	steps   int
	endAt   int
	resets  int
	resized bool
	last    core.InputFrame
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.steps = 0; g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) Resize(cols, rows int)    { g.resized = true }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.last = in.Clone()
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{
		Score:    g.steps,
		Lives:    1,
		Feathers: 2,
		Misses:   1,
		Elapsed:  time.Duration(g.steps) * time.Second,
		GameOver: g.steps >= g.endAt,
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m tea.Model, msg tea.Msg) tea.Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space drops", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDrop, false},
		{"enter drops", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionDrop, false},
		{"f feathers", runes("f"), core.ActionFeathers, false},
		{"p pauses", runes("p"), core.ActionPause, false},
		{"r restarts", runes("r"), core.ActionRestart, false},
		{"q quits", runes("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"x does nothing", runes("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey = (%v, %v), want (%v, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestKeyMapperMouse(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 14, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 20, Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 18, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 16, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, &frame)

	want := []core.PointerEvent{
		{Kind: core.PointerDown, Col: 10, Row: 5},
		{Kind: core.PointerMove, Col: 14, Row: 5},
		{Kind: core.PointerUp, Col: 16, Row: 5},
	}
	if len(frame.Pointer) != len(want) {
		t.Fatalf("got %d pointer events, want %d: %v", len(frame.Pointer), len(want), frame.Pointer)
	}
	for i := range want {
		if frame.Pointer[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, frame.Pointer[i], want[i])
		}
	}
}

func TestMenuActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runes("q"), MenuActionQuit},
		{runes("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{endAt: 3}
	var m tea.Model = NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	m.Init()

	for range 6 {
		m = update(t, m, TickMsg(time.Now()))
	}

	runs, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.Score != 3 || r.Feathers != 2 || r.Misses != 1 || r.Duration != 3*time.Second {
		t.Errorf("saved run = %+v", r)
	}
}

func TestModelRestartStartsNewRun(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{endAt: 1}
	var m tea.Model = NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	m.Init()

	m = update(t, m, TickMsg(time.Now()))
	if !m.(Model).State().GameOver {
		t.Fatal("run should be over")
	}

	m = update(t, m, runes("r"))
	m = update(t, m, TickMsg(time.Now()))
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	m = update(t, m, TickMsg(time.Now()))

	runs, _ := store.TopScores("scripted", 10)
	if len(runs) != 2 {
		t.Errorf("saved %d runs, want one per finished run", len(runs))
	}
}

func TestModelForwardsInput(t *testing.T) {
	game := &scriptedGame{endAt: 100}
	var m tea.Model = NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	m.Init()

	m = update(t, m, runes("f"))
	m = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(time.Now()))

	if !game.last.Has(core.ActionFeathers) {
		t.Error("feathers action not forwarded")
	}
	if len(game.last.Pointer) != 1 || game.last.Pointer[0].Kind != core.PointerDown {
		t.Errorf("pointer = %v, want one PointerDown", game.last.Pointer)
	}

	// Input is consumed by the tick.
	m = update(t, m, TickMsg(time.Now()))
	if game.last.Has(core.ActionFeathers) || len(game.last.Pointer) != 0 {
		t.Error("input leaked into the next tick")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &scriptedGame{endAt: 100}
	var m tea.Model = NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if !game.resized {
		t.Error("Resize not called")
	}
	if game.resets != 1 {
		t.Errorf("resets = %d, resize must not restart", game.resets)
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("view should render the game")
	}
}

func TestSessionMenuGameMenu(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var m tea.Model = NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "tester")
	m.Init()
	if !strings.Contains(m.View(), "P I L L O W") {
		t.Fatal("session should open on the menu")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.(SessionModel).view != viewGame {
		t.Fatal("enter should start the selected mode")
	}
	m = update(t, m, TickMsg(time.Now()))
	if !strings.Contains(m.View(), "Tower: 0") {
		t.Error("game view should show the HUD")
	}

	// Esc pauses first, and leaves once paused.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = update(t, m, TickMsg(time.Now()))
	if m.(SessionModel).view != viewGame {
		t.Fatal("first esc should only pause")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.(SessionModel).view != viewMenu {
		t.Fatal("esc while paused should return to the menu")
	}
}

func TestSessionScoreboard(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.RunResult{Mode: "pillow", Score: 9, Duration: 75 * time.Second}); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	var m tea.Model = NewSessionModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60}, "tester")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.(SessionModel).view != viewScores {
		t.Fatal("tab should open the scoreboard")
	}

	view := m.View()
	for _, want := range []string{"TALLEST TOWERS", "1 runs", "1:15"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard missing %q", want)
		}
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.(SessionModel).view != viewMenu {
		t.Error("esc should return to the menu")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorPillow)
	s.DrawTextColored(2, 0, "cd", core.ColorLine)
	s.DrawText(0, 1, "ef")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "ef"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{75 * time.Second, "1:15"},
		{10*time.Minute + 1500*time.Millisecond, "10:02"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
