package tui

import (
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rosterpick/internal/input"
	"github.com/jask/rosterpick/internal/prefs"
	"github.com/jask/rosterpick/internal/session"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	minCardWidth  = 8
)

// Options configures the App. Zero values fall back to sensible defaults.
type Options struct {
	Keymap    input.Keymap
	CardWidth int
	TeamPath  string
	Logger    *log.Logger
}

// App is the bubbletea model for the picker. Terminal input is translated into hub
// events; all state changes go through the session's controllers.
type App struct {
	sess     *session.Session
	hub      *input.Hub
	disp     *input.Dispatcher
	teardown input.Teardown
	keys     input.Keymap
	help     help.Model
	search   textinput.Model
	logger   *log.Logger

	teamPath  string
	cardWidth int
	width     int
	height    int
	offset    int // first visible card in the carousel

	searching   bool
	savedQuery  string
	status      string
	statusIsErr bool
	quitting    bool

	mouse mouseState
}

// New activates a dispatcher for sess on a fresh hub. Call Close (or quit) to tear it down.
func New(sess *session.Session, opts Options) (*App, error) {
	keys := opts.Keymap
	if keys.Binding(input.ActionNext).Keys() == nil {
		keys = input.DefaultKeymap()
	}
	cw := opts.CardWidth
	if cw < minCardWidth {
		cw = 22
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "name"
	ti.CharLimit = 32

	h := help.New()
	h.Styles.ShortKey = chipValue
	h.Styles.ShortDesc = dimStyle
	h.Styles.FullKey = chipValue
	h.Styles.FullDesc = dimStyle

	a := &App{
		sess:      sess,
		hub:       input.NewHub(),
		keys:      keys,
		help:      h,
		search:    ti,
		logger:    logger,
		teamPath:  opts.TeamPath,
		cardWidth: cw,
		width:     defaultWidth,
		height:    defaultHeight,
		mouse:     newMouseState(),
	}
	a.disp = input.New(sess.Controllers(), keys)
	td, err := a.disp.Activate(a.hub)
	if err != nil {
		return nil, fmt.Errorf("activate input: %w", err)
	}
	a.teardown = td
	sess.Selection.SetScroller(a)
	return a, nil
}

// Close removes every listener the App registered. Safe to call more than once.
func (a *App) Close() {
	if a.teardown != nil {
		a.teardown()
	}
	a.sess.Selection.SetScroller(nil)
}

func (a *App) Init() tea.Cmd { return nil }

type statusMsg string

type errMsg struct{ error }

type teamSavedMsg struct {
	loadout prefs.Loadout
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		a.clampOffset()
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	case tea.MouseMsg:
		a.handleMouse(m)
		return a, nil
	case tea.BlurMsg:
		a.cancelPointer()
		return a, nil
	case statusMsg:
		a.setStatus(string(m), false)
		return a, nil
	case errMsg:
		a.logger.Printf("error: %v", m.error)
		a.setStatus(m.Error(), true)
		return a, nil
	case teamSavedMsg:
		a.logger.Printf("team %s saved to %s", m.loadout.ID, a.teamPath)
		a.setStatus(fmt.Sprintf("Team saved (%d slots)", len(m.loadout.Slots)), false)
		return a, nil
	}
	if a.searching {
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searching {
		return a.handleSearchKey(m)
	}
	name := m.String()
	action, _ := a.keys.Lookup(name)
	switch action {
	case input.ActionQuit:
		a.quitting = true
		a.Close()
		return a, tea.Quit
	case input.ActionSearch:
		a.searching = true
		a.savedQuery = a.sess.Criteria().Query
		a.search.SetValue(a.savedQuery)
		a.search.CursorEnd()
		return a, a.search.Focus()
	case input.ActionSave:
		return a, a.saveTeamCmd()
	case input.ActionHelp:
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	}

	ev := &input.KeyEvent{Name: name}
	a.hub.Emit(ev)
	if !ev.Handled() {
		return a, nil
	}
	a.clearStatus()
	a.clampOffset()
	a.ScrollIntoView(a.sess.Selection.PreviewedID())
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEnter:
		a.endSearch()
		return a, nil
	case tea.KeyEsc:
		a.sess.SetQuery(a.savedQuery)
		a.endSearch()
		return a, nil
	case tea.KeyCtrlC:
		a.quitting = true
		a.Close()
		return a, tea.Quit
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	a.sess.SetQuery(a.search.Value())
	a.offset = 0
	a.ScrollIntoView(a.sess.Selection.PreviewedID())
	return a, cmd
}

func (a *App) endSearch() {
	a.searching = false
	a.search.Blur()
	a.clampOffset()
	a.ScrollIntoView(a.sess.Selection.PreviewedID())
}

func (a *App) saveTeamCmd() tea.Cmd {
	if a.teamPath == "" {
		return func() tea.Msg { return statusMsg("No team path configured") }
	}
	ids := a.sess.Slots.Slots()
	path := a.teamPath
	return func() tea.Msg {
		l, err := prefs.SaveTeam(path, ids)
		if err != nil {
			return errMsg{fmt.Errorf("save team: %w", err)}
		}
		return teamSavedMsg{loadout: l}
	}
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusIsErr = isErr
}

func (a *App) clearStatus() { a.setStatus("", false) }

// cardsPerPage is how many cards fit across the terminal.
func (a *App) cardsPerPage() int {
	n := (a.width + 1) / (a.cardWidth + 1)
	return max(1, n)
}

// ScrollIntoView moves the carousel so the card for id is on screen.
func (a *App) ScrollIntoView(id string) {
	idx := slices.Index(a.sess.Selection.Visible(), id)
	if idx < 0 {
		return
	}
	per := a.cardsPerPage()
	if idx < a.offset {
		a.offset = idx
	} else if idx >= a.offset+per {
		a.offset = idx - per + 1
	}
}

func (a *App) scrollBy(n int) {
	a.offset += n
	a.clampOffset()
}

func (a *App) clampOffset() {
	limit := max(0, len(a.sess.Selection.Visible())-a.cardsPerPage())
	a.offset = min(max(a.offset, 0), limit)
}
