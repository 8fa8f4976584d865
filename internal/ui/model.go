package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/dirnav/internal/action"
	"github.com/atomicstack/dirnav/internal/help"
	"github.com/atomicstack/dirnav/internal/keymap"
	"github.com/atomicstack/dirnav/internal/logging/events"
	"github.com/atomicstack/dirnav/internal/settings"
	"github.com/atomicstack/dirnav/internal/theme"
	uistate "github.com/atomicstack/dirnav/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type pager = uistate.Pager

const (
	// defaultWidth applies until the terminal reports its size.
	defaultWidth = 80
	// gutterWidth is the cursor indicator plus one space.
	gutterWidth = 2
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Document   *help.Document
	Settings   settings.Settings
	Keymap     *keymap.Store
	Watcher    *keymap.Watcher
	Width      int
	Height     int
	ShowFooter bool
	Mouse      bool
}

// Model implements the Bubble Tea model for the help screen.
type Model struct {
	pager         *pager
	doc           *help.Document
	keymap        *keymap.Store
	watcher       *keymap.Watcher
	settings      settings.Settings
	width         int
	height        int
	fixedWidth    bool
	fixedHeight   bool
	renderedWidth int
	showFooter    bool
	mouse         bool
	errMsg        string
	infoMsg       string
	infoExpire    time.Time
	exitAction    action.Action

	searchCursor      cursor.Model
	searchCursorDirty bool
	searchFocused     bool

	handlers map[reflect.Type]msgHandler
}

// NewModel renders the help document once at the initial width and
// prepares the search state from the configured modes.
func NewModel(opts Options) *Model {
	store := opts.Keymap
	if store == nil {
		store = keymap.NewStore(opts.Settings.Keybinds)
	}
	m := &Model{
		doc:        opts.Document,
		keymap:     store,
		watcher:    opts.Watcher,
		settings:   opts.Settings,
		showFooter: opts.ShowFooter,
		mouse:      opts.Mouse,
		exitAction: action.None,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.pager = uistate.NewPager(nil, m.matcher(), opts.Settings.FilterSearch)
	m.render()

	c := cursor.New()
	if styles.SearchPrompt != nil {
		c.Style = styles.SearchPrompt.Copy().Reverse(true)
	}
	if styles.Search != nil {
		c.TextStyle = styles.Search.Copy()
	}
	c.SetChar(" ")
	m.searchCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.watcher != nil {
		cmds = append(cmds, waitForKeymapEvent(m.watcher))
	}
	m.searchFocused = true
	if cmd := m.searchCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateSearchCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// ExitAction reports the action that closed the help screen, or action.None
// while it is still open.
func (m *Model) ExitAction() action.Action {
	return m.exitAction
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(keymapEventMsg{}):    m.handleKeymapEventMsg,
		reflect.TypeOf(keymapDoneMsg{}):     m.handleKeymapDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.searchCursorDirty && m.searchFocused {
		m.searchCursorDirty = false
		m.searchCursor.Blink = false
		if cmd := m.searchCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// render reflows the document for the current width against the live
// keymap snapshot.
func (m *Model) render() {
	width := m.contentWidth()
	var lines []help.Line
	if m.doc != nil {
		lines = help.Render(m.doc, m.keymap.Load(), width)
	}
	m.pager.UpdateLines(lines)
	m.renderedWidth = width
	m.syncViewport()
	events.Help.Render(width, len(lines))
}

func (m *Model) contentWidth() int {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	if width -= gutterWidth; width < 1 {
		width = 1
	}
	return width
}

func (m *Model) matcher() uistate.Matcher {
	return uistate.Matcher{
		Gap:  m.settings.GapSearchMode,
		Case: m.settings.CaseSensitiveMode,
	}
}

func (m *Model) syncViewport() {
	m.pager.EnsureCursorVisible(m.visibleLines())
}
