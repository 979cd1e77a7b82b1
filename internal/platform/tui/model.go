package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-snake/internal/config"
	"github.com/vovakirdan/retro-snake/internal/core"
	"github.com/vovakirdan/retro-snake/internal/games/snake"
)

// Sound receives the fire-and-forget game events.
type Sound interface {
	Play(ev core.Event)
}

// Options configures a game session.
type Options struct {
	Runtime core.RuntimeConfig
	Theme   config.ThemeConfig
	Sound   Sound       // nil plays nothing
	Logger  *log.Logger // nil discards
	Start   time.Time   // first tick interval starts here; zero means now

	// ScreenshotDir receives ctrl+s dumps. Empty means ~/.retrosnake/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for a game session.
type Model struct {
	game          *snake.Game
	screen        *core.Screen
	scheduler     *core.TickScheduler
	sound         Sound
	logger        *log.Logger
	styles        Styles
	keys          KeyMap
	help          help.Model
	config        core.RuntimeConfig
	inputFrame    core.InputFrame
	screenshotDir string
	showHelp      bool
	quitting      bool
}

// NewModel creates a model with a freshly reset game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = core.DefaultConfig().FrameRate
	}

	start := opts.Start
	if start.IsZero() {
		start = time.Now()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:          snake.New(),
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		scheduler:     core.NewTickScheduler(start),
		sound:         opts.Sound,
		logger:        logger,
		styles:        NewStyles(opts.Theme),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		screenshotDir: opts.ScreenshotDir,
	}
	m.layout(cfg.ScreenW, cfg.ScreenH)
	m.game.Reset(m.gameConfig())

	m.logger.Info("session started", "seed", cfg.Seed, "width", cfg.ScreenW, "height", cfg.ScreenH)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records directional input for the next frame. Quit and
// screenshot act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.game.Score(), "ticks", m.game.Snapshot().Tick)
		return m, tea.Quit
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	case core.ActionNone:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
		}
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.layout(msg.Width, msg.Height)
	m.game.Resize(m.screen.Width(), m.screen.Height())
	return m, nil
}

// handleTick runs one render frame: input is applied every frame, the
// simulation advances only when the scheduler allows it.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.game.HandleInput(m.inputFrame)
	m.inputFrame.Clear()

	if m.scheduler.ShouldTick(now, snake.TickInterval) && m.game.Fits() {
		wasRunning := m.game.Running()
		score := m.game.Score()

		result := m.game.Update()
		m.dispatch(result, wasRunning, score)
	}

	// Continue ticking
	return m, tickCmd(m.config.FrameRate)
}

// dispatch forwards tick events to audio and the log.
func (m Model) dispatch(result core.StepResult, wasRunning bool, prevScore int) {
	for _, ev := range result.Events {
		if m.sound != nil {
			m.sound.Play(ev)
		}
		if ev == core.EventEat {
			m.logger.Debug("eat", "score", result.State.Score)
		}
	}

	if wasRunning && !result.State.Running {
		m.logger.Info("game over", "cause", string(m.game.LastCause()), "score", prevScore)
	}
}

// layout sizes the screen buffer, reserving the bottom row for the help
// line when the terminal is taller than the board.
func (m *Model) layout(width, height int) {
	_, minH := snake.MinScreenSize()
	m.showHelp = height > minH
	if m.showHelp {
		height--
	}
	m.screen.Resize(width, height)
}

// gameConfig is the runtime config as seen by the game.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenW = m.screen.Width()
	cfg.ScreenH = m.screen.Height()
	return cfg
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".retrosnake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen, m.styles)

	if m.showHelp {
		m.help.Width = m.screen.Width()
		view += "\n" + m.help.View(m.keys)
	}
	return view
}

// Game exposes the running game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
