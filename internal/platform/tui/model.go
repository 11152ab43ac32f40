// Package tui provides the Bubble Tea front end for the game loop.
// The loop runs on its own goroutine; this package forwards keys to it and
// displays the frames it publishes.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/loop"
	"github.com/vovakirdan/mazechase/internal/registry"
)

// footerHeight is the number of rows kept below the game for help and status.
const footerHeight = 1

// FrameMsg carries a frame published by the loop.
type FrameMsg struct {
	Frame *loop.Frame
}

type pausedMsg struct{ paused bool }

type screenshotMsg struct {
	path string // empty when copied to the clipboard
	err  error
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	gameID string
	driver *loop.Driver
	keys   KeyMap
	mapper *KeyMapper
	help   help.Model
	logger *log.Logger

	frame     *loop.Frame
	paused    bool
	status    string
	statusErr bool
	quitting  bool
}

// NewModel creates a model that controls the given driver.
func NewModel(gameID string, d *loop.Driver, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	keys := DefaultKeyMap()
	return Model{
		gameID: gameID,
		driver: d,
		keys:   keys,
		mapper: NewKeyMapper(keys),
		help:   help.New(),
		logger: logger.WithPrefix("tui"),
	}
}

// Init starts the loop.
func (m Model) Init() tea.Cmd {
	d := m.driver
	return func() tea.Msg {
		d.Start()
		return nil
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.driver.SetSize(msg.Width, max(msg.Height-footerHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.frame = msg.Frame
		return m, nil

	case pausedMsg:
		m.paused = msg.paused
		m.statusErr = false
		if m.paused {
			m.status = "Paused - press p to resume"
		} else {
			m.status = ""
		}
		return m, nil

	case screenshotMsg:
		m.statusErr = msg.err != nil
		switch {
		case msg.err != nil:
			m.status = "Screenshot failed: " + msg.err.Error()
			m.logger.Warn("screenshot failed", "err", msg.err)
		case msg.path != "":
			m.status = "Saved " + msg.path
		default:
			m.status = "Frame copied to clipboard"
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		return m, m.screenshotCmd()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action.IsDirection():
		if !m.paused {
			m.driver.SetDirection(action)
		}
	case action == core.ActionPause:
		return m, m.togglePauseCmd()
	case action == core.ActionRestart:
		m.driver.Request(action)
	}

	return m, nil
}

// togglePauseCmd stops or resumes the loop off the update goroutine.
// Stop waits for the current tick, which may itself be sending a frame.
func (m Model) togglePauseCmd() tea.Cmd {
	d := m.driver
	if m.paused {
		return func() tea.Msg {
			d.Resume()
			return pausedMsg{paused: false}
		}
	}
	return func() tea.Msg {
		d.Stop()
		return pausedMsg{paused: true}
	}
}

// screenshotCmd copies the last frame to the clipboard, falling back to a file.
func (m Model) screenshotCmd() tea.Cmd {
	f := m.frame
	gameID := m.gameID
	return func() tea.Msg {
		if f == nil {
			return screenshotMsg{err: loop.ErrNoFrame}
		}
		text := f.Screen.String()
		if err := clipboard.WriteAll(text); err == nil {
			return screenshotMsg{}
		}

		home, err := os.UserHomeDir()
		if err != nil {
			return screenshotMsg{err: err}
		}
		dir := filepath.Join(home, ".mazechase", "screenshots")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return screenshotMsg{err: err}
		}
		filename := fmt.Sprintf("%s_%s.txt", gameID, f.Now.Format("20060102_150405"))
		path := filepath.Join(dir, filename)
		if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
			return screenshotMsg{err: err}
		}
		return screenshotMsg{path: path}
	}
}

// View renders the latest frame and the footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.frame == nil {
		return "Loading..."
	}

	footer := m.help.View(m.keys)
	switch {
	case m.statusErr:
		footer = errorStyle.Render(m.status)
	case m.status != "":
		footer = statusStyle.Render(m.status)
	}
	return RenderScreen(m.frame.Screen) + "\n" + footer
}

// programPresenter forwards frames to a running Bubble Tea program.
type programPresenter struct {
	program *tea.Program
}

func (p *programPresenter) Present(f *loop.Frame) error {
	if f == nil {
		return loop.ErrNoFrame
	}
	if p.program == nil {
		return fmt.Errorf("tui: program not attached")
	}
	p.program.Send(FrameMsg{Frame: f})
	return nil
}

// Run starts the loop and the Bubble Tea program for the given game.
// It returns when the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	presenter := &programPresenter{}
	d := loop.New(game, presenter, loop.Options{
		TickRate: cfg.TickRate,
		Width:    cfg.ScreenW,
		Height:   max(cfg.ScreenH-footerHeight, 0),
		Logger:   logger,
	})
	model := NewModel(game.ID(), d, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	presenter.program = p

	_, err := p.Run()
	d.Stop()

	st := d.Stats()
	logger.Info("session ended",
		"game", game.ID(),
		"ticks", st.Ticks,
		"overruns", st.Overruns,
		"score", game.State().Score)
	return err
}
