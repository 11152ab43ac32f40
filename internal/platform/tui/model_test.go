package tui

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/loop"
)

// recordingGame remembers every action the loop passed to it.
type recordingGame struct {
	mu   sync.Mutex
	seen map[core.Action]bool
}

func (g *recordingGame) Step(_ time.Time, in core.InputFrame) core.StepResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.seen == nil {
		g.seen = make(map[core.Action]bool)
	}
	for a, on := range in.Actions {
		if on {
			g.seen[a] = true
		}
	}
	return core.StepResult{}
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "maze")
}

func (g *recordingGame) Saw(a core.Action) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seen[a]
}

func newTestModel(g loop.Stepper) (Model, *loop.Driver) {
	d := loop.New(g, nil, loop.Options{TickRate: 200, Width: 8, Height: 2})
	return NewModel("mazechase", d, nil), d
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelShowsLatestFrame(t *testing.T) {
	m, _ := newTestModel(&recordingGame{})
	if got := m.View(); got != "Loading..." {
		t.Errorf("expected loading view, got %q", got)
	}

	screen := core.NewScreen(4, 1)
	screen.DrawText(0, 0, "ᗧ··")
	m, _ = update(t, m, FrameMsg{Frame: &loop.Frame{Seq: 1, Screen: screen}})

	if !strings.Contains(m.View(), "ᗧ··") {
		t.Errorf("frame missing from view:\n%s", m.View())
	}
}

func TestModelForwardsInput(t *testing.T) {
	g := &recordingGame{}
	m, d := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runeKey('r'))
	_ = m

	d.Start()
	defer d.Stop()

	deadline := time.Now().Add(time.Second)
	for !g.Saw(core.ActionLeft) || !g.Saw(core.ActionRestart) {
		if time.Now().After(deadline) {
			t.Fatal("loop never delivered the queued input")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestModelWindowSizeResizesLoop(t *testing.T) {
	m, d := newTestModel(&recordingGame{})
	update(t, m, tea.WindowSizeMsg{Width: 60, Height: 25})

	if w, h := d.Size(); w != 60 || h != 25-footerHeight {
		t.Errorf("expected loop size 60x%d, got %dx%d", 25-footerHeight, w, h)
	}
}

func TestModelPauseStopsAndResumesLoop(t *testing.T) {
	m, d := newTestModel(&recordingGame{})
	d.Start()
	defer d.Stop()

	m, cmd := update(t, m, runeKey('p'))
	if cmd == nil {
		t.Fatal("pause returned no command")
	}
	msg := cmd()
	if d.Running() {
		t.Error("loop still running after pause")
	}
	if msg != (pausedMsg{paused: true}) {
		t.Errorf("expected paused message, got %#v", msg)
	}

	m, _ = update(t, m, msg)
	if !m.paused {
		t.Error("model not paused")
	}
	m, _ = update(t, m, FrameMsg{Frame: &loop.Frame{Screen: core.NewScreen(4, 1)}})
	if !strings.Contains(m.View(), "Paused") {
		t.Errorf("paused view missing banner:\n%s", m.View())
	}

	m, cmd = update(t, m, runeKey('p'))
	if cmd == nil {
		t.Fatal("resume returned no command")
	}
	m, _ = update(t, m, cmd())
	if !d.Running() {
		t.Error("loop not running after resume")
	}
	if m.paused {
		t.Error("model still paused")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(&recordingGame{})
	m, cmd := update(t, m, runeKey('q'))

	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("expected QuitMsg, got %#v", msg)
	}
	if v := m.View(); v != "" {
		t.Errorf("expected empty view after quit, got %q", v)
	}
}

func TestModelScreenshotWithoutFrame(t *testing.T) {
	m, _ := newTestModel(&recordingGame{})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("screenshot returned no command")
	}

	msg, ok := cmd().(screenshotMsg)
	if !ok {
		t.Fatal("expected screenshotMsg")
	}
	if !errors.Is(msg.err, loop.ErrNoFrame) {
		t.Errorf("expected ErrNoFrame, got %v", msg.err)
	}

	m, _ = update(t, m, msg)
	if !m.statusErr {
		t.Error("screenshot failure not shown as an error")
	}
}

func TestPresenterRejectsNilFrame(t *testing.T) {
	p := &programPresenter{}
	if err := p.Present(nil); !errors.Is(err, loop.ErrNoFrame) {
		t.Errorf("expected ErrNoFrame, got %v", err)
	}
	if err := p.Present(&loop.Frame{}); err == nil {
		t.Error("expected error for a frame without a screen")
	}
}
