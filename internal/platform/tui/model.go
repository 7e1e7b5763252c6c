package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// hudHeight is the number of rows above the grid (status line + separator).
const hudHeight = 2

// footerHeight is the number of rows below the screen buffer (help line).
const footerHeight = 1

// Options configures a Model beyond the game itself.
type Options struct {
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
	// OnGameOver is called once, on the tick that ends the game.
	OnGameOver func(snake.Snapshot)
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	ctrl     *snake.Controller
	config   core.RuntimeConfig
	screen   *core.Screen
	raster   Rasterizer
	renderer *ScreenRenderer
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	onOver   func(snake.Snapshot)
	tooSmall bool
	quitting bool
	gameOver bool
}

// NewModel creates a new Bubble Tea model for the given controller.
func NewModel(ctrl *snake.Controller, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		ctrl:     ctrl,
		config:   cfg,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerHeight),
		renderer: NewScreenRenderer(opts.Renderer),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		onOver:   opts.OnGameOver,
	}
	m.layout()
	return m
}

// layout centres the grid under the HUD and flags terminals that cannot fit it.
func (m *Model) layout() {
	gridW, gridH := GridSize(m.ctrl.Grid())
	m.tooSmall = m.screen.Width() < gridW || m.screen.Height() < gridH+hudHeight
	m.raster = Rasterizer{
		CellSize: m.ctrl.CellSize(),
		OffsetX:  max((m.screen.Width()-gridW)/2, 0),
		OffsetY:  hudHeight,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	grid := m.ctrl.Grid()
	m.logger.Info("game started",
		"cols", grid.Cols,
		"rows", grid.Rows,
		"tps", m.config.TickRate,
		"seed", m.config.Seed,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Non-directional keys other than quit
// are ignored.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsQuit(msg) {
		m.quitting = true
		m.logger.Info("quit", "score", m.ctrl.Score())
		return m, tea.Quit
	}

	if d, ok := m.keys.Direction(msg); ok {
		m.ctrl.OnDirection(d)
	}
	return m, nil
}

// handleResize keeps the game running and only re-lays out the screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerHeight)
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// handleTick advances the game unless the terminal is too small to show it.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameOver {
		return m, nil
	}
	if m.tooSmall {
		return m, tickCmd(m.config.TickRate)
	}

	res := m.ctrl.OnTick()
	if m.logger.GetLevel() <= log.DebugLevel {
		m.logger.Debug("tick", "state", m.ctrl.DebugState())
	}

	if res.Terminated {
		m.gameOver = true
		snap := m.ctrl.Snapshot()
		m.logger.Info("game over",
			"score", snap.Score,
			"length", snap.Length,
			"ticks", snap.Tick,
		)
		if m.onOver != nil {
			m.onOver(snap)
		}
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.gameOver {
		return ""
	}

	m.screen.Clear()
	m.renderHUD()

	if m.tooSmall {
		gridW, gridH := GridSize(m.ctrl.Grid())
		m.screen.DrawTextCentered(m.screen.Height()/2, "Window too small")
		m.screen.DrawTextCentered(m.screen.Height()/2+1,
			fmt.Sprintf("Need %dx%d", gridW, gridH+hudHeight+footerHeight))
	} else {
		m.raster.Draw(m.screen, m.ctrl.OnRender())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderer.Render(m.screen),
		m.help.View(m.keys),
	)
}

// renderHUD draws the top status bar.
func (m Model) renderHUD() {
	hud := fmt.Sprintf(" Snake  Score: %d", m.ctrl.Score())
	m.screen.DrawText(0, 0, hud)
	for x := range m.screen.Width() {
		m.screen.Set(x, 1, '─')
	}
}

// Score returns the current score.
func (m Model) Score() int {
	return m.ctrl.Score()
}

// GameOver reports whether the game ended by collision (as opposed to quitting).
func (m Model) GameOver() bool {
	return m.gameOver
}

// Result is the outcome of Run.
type Result struct {
	Score    int
	GameOver bool // false when the player quit before dying
}

// Run starts the Bubble Tea program for ctrl and blocks until it exits.
func Run(ctrl *snake.Controller, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(ctrl, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	fm, ok := final.(Model)
	if !ok {
		return Result{Score: ctrl.Score()}, nil
	}
	return Result{Score: fm.Score(), GameOver: fm.GameOver()}, nil
}
