package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gamekit/internal/config"
	"github.com/vovakirdan/gamekit/internal/demo"
	"github.com/vovakirdan/gamekit/internal/screen"
	"github.com/vovakirdan/gamekit/internal/storage"
)

// Model is the Bubble Tea model driving a demo run. It collects raw key
// presses between ticks and feeds them to the game as the polled down-set
// on each TickMsg, so the terminal's press-only key stream still flows
// through the tracker's polling path.
type Model struct {
	game     *demo.Game
	screen   *screen.Screen
	store    *storage.Store
	cfg      config.Config
	seed     int64
	quitting bool
	runSaved bool // whether the current game-over has been persisted
}

// NewModel creates a model for the given game. store may be nil, in which
// case finished runs are not persisted.
func NewModel(game *demo.Game, store *storage.Store, cfg config.Config, seed int64, width, height int) Model {
	return Model{
		game:   game,
		screen: screen.New(width, height),
		store:  store,
		cfg:    cfg,
		seed:   seed,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	}

	m.game.KeyDown(msg.String())
	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.game.GameOver()
	m.game.Step()

	if m.game.GameOver() && !wasOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}
	if !m.game.GameOver() {
		m.runSaved = false
	}

	return m, tickCmd(m.cfg.TickRate)
}

// saveRun persists the finished run. Best-effort: a storage failure does
// not interrupt play.
func (m *Model) saveRun() {
	if m.store == nil || m.game.Score() == 0 {
		return
	}
	//nolint:errcheck
	m.store.SaveRun(storage.RunRecord{
		Score:         m.game.Score(),
		Collected:     m.game.Collected(),
		DurationTicks: m.game.Tick(),
		Seed:          m.seed,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *demo.Game, store *storage.Store, cfg config.Config, seed int64, width, height int) error {
	model := NewModel(game, store, cfg, seed, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
