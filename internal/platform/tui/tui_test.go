package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a runs left", runeKey('a'), core.ActionLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d runs right", runeKey('d'), core.ActionRight, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w jumps", runeKey('w'), core.ActionUp, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHoldTracker(t *testing.T) {
	start := time.Unix(0, 0)
	h := newHoldTracker(100 * time.Millisecond)

	held := func(at time.Duration) core.InputFrame {
		f := core.NewInputFrame()
		h.Apply(&f, start.Add(at))
		return f
	}

	h.Press(core.ActionLeft, start)
	h.Press(core.ActionFire, start)

	f := held(50 * time.Millisecond)
	if !f.Held(core.ActionLeft) {
		t.Error("left should be held inside the window")
	}
	if f.Held(core.ActionFire) {
		t.Error("fire is edge-triggered and should never be held")
	}

	// Auto-repeat extends the window.
	h.Press(core.ActionLeft, start.Add(80*time.Millisecond))
	if f := held(150 * time.Millisecond); !f.Held(core.ActionLeft) {
		t.Error("repeat should extend the hold")
	}
	if f := held(200 * time.Millisecond); f.Held(core.ActionLeft) {
		t.Error("hold should lapse after the window")
	}

	h.Press(core.ActionLeft, start.Add(300*time.Millisecond))
	h.Press(core.ActionRight, start.Add(310*time.Millisecond))
	f = held(320 * time.Millisecond)
	if f.Held(core.ActionLeft) || !f.Held(core.ActionRight) {
		t.Errorf("pressing right should release left, held = %v", f.Holding)
	}

	h.Reset()
	if f := held(320 * time.Millisecond); len(f.Holding) != 0 {
		t.Errorf("Reset should release everything, held = %v", f.Holding)
	}
}

// scriptedGame ends a round with the queued summaries, one per Step.
type scriptedGame struct {
	endings []*core.RoundSummary
	inputs  []core.InputFrame
	resets  int
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen) { dst.Clear(); dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState { return core.GameState{Round: 1} }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	var ended *core.RoundSummary
	if len(g.endings) > 0 {
		ended, g.endings = g.endings[0], g.endings[1:]
	}
	return core.StepResult{State: g.State(), RoundEnded: ended}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 50, Seed: 1}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(time.Now()))
	return next.(Model)
}

func TestModelSavesFinishedRounds(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	game := &scriptedGame{endings: []*core.RoundSummary{
		{RoundID: "r1", Score: 12, Cause: core.EndCauseEnemy},
		nil,
		{RoundID: "r2", Score: 0, Cause: core.EndCauseRestart},
		{RoundID: "r3", Score: 3, Cause: core.EndCauseOutOfWorld},
	}}

	m := NewModel(game, store, testConfig(), "hard", quietLogger())
	m.Init()
	for range 4 {
		m = tick(t, m)
	}

	if m.Saved() != 2 {
		t.Errorf("Saved() = %d, expected 2 (empty rounds are skipped)", m.Saved())
	}
	rounds, err := store.TopRounds("hard", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rounds) != 2 || rounds[0].RoundID != "r1" || rounds[1].RoundID != "r3" {
		t.Errorf("unexpected stored rounds %+v", rounds)
	}
	if game.resets != 1 {
		t.Errorf("Init should reset the game once, got %d", game.resets)
	}
}

func TestModelInputFrames(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testConfig(), "normal", quietLogger())
	now := time.Unix(100, 0)
	m.now = func() time.Time { return now }

	next, _ := m.Update(runeKey('d'))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(Model)
	m = tick(t, m)

	now = now.Add(100 * time.Millisecond)
	m = tick(t, m)

	now = now.Add(HoldWindow)
	m = tick(t, m)

	if len(game.inputs) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(game.inputs))
	}
	first, second, third := game.inputs[0], game.inputs[1], game.inputs[2]
	if !first.Has(core.ActionRight) || !first.Has(core.ActionFire) || !first.Held(core.ActionRight) {
		t.Errorf("first frame should carry the presses, got %+v", first)
	}
	if second.Has(core.ActionFire) || !second.Held(core.ActionRight) {
		t.Errorf("second frame should only hold right, got %+v", second)
	}
	if third.Held(core.ActionRight) {
		t.Errorf("hold should have lapsed, got %+v", third)
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testConfig(), "normal", quietLogger())
	m.Init()
	m = tick(t, m)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	m = tick(t, m)

	if game.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", game.resets)
	}
	if len(game.inputs) != 2 {
		t.Errorf("the round should keep stepping across a resize, got %d steps", len(game.inputs))
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen is %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m := NewModel(&scriptedGame{}, nil, testConfig(), "normal", quietLogger())

	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}

	// Back is only honoured by embedded models on the pause screen.
	next, _ = m.Update(runeKey('b'))
	if next.(Model).BackToMenu() {
		t.Error("standalone model should ignore back")
	}
	m.embedded = true
	m.gameState.Paused = true
	next, _ = m.Update(runeKey('b'))
	if !next.(Model).BackToMenu() {
		t.Error("embedded paused model should go back to the menu")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetWithColor(2, 0, '*', core.ColorBrightYellow)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "*") {
		t.Errorf("first line lost text: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "xyz") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestSessionFlow(t *testing.T) {
	var created []config.DifficultyPreset
	factory := func(p config.DifficultyPreset) (core.Game, error) {
		created = append(created, p)
		return &scriptedGame{}, nil
	}

	var m tea.Model = NewSessionModel(factory, nil, testConfig(), quietLogger(), "tester")
	send := func(msg tea.Msg) {
		m, _ = m.Update(msg)
	}

	// Cursor starts on Normal; move down to Hard and select.
	send(tea.KeyMsg{Type: tea.KeyDown})
	send(tea.KeyMsg{Type: tea.KeyEnter})

	s := m.(SessionModel)
	if s.view != viewGame {
		t.Fatalf("expected game view, got %v", s.view)
	}
	if len(created) != 1 || created[0] != config.DifficultyHard {
		t.Errorf("factory calls = %v, expected [hard]", created)
	}
	if !strings.Contains(s.View(), "scripted") {
		t.Error("game view should render the game")
	}

	send(runeKey('b'))
	if m.(SessionModel).view != viewGame {
		t.Error("back should be ignored while the game is running")
	}

	// Pause, then leave.
	sm := m.(SessionModel)
	sm.game.gameState.Paused = true
	m = sm
	send(runeKey('b'))
	if m.(SessionModel).view != viewMenu {
		t.Error("back from the pause screen should return to the menu")
	}

	send(tea.KeyMsg{Type: tea.KeyTab})
	if m.(SessionModel).view != viewScores {
		t.Error("tab should open the scoreboard")
	}
	send(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(SessionModel).view != viewMenu {
		t.Error("esc should leave the scoreboard")
	}

	send(runeKey('q'))
	if !m.(SessionModel).quitting {
		t.Error("q should end the session")
	}
}
