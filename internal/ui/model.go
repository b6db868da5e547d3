package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/tui-titlebar/internal/logging/events"
	"github.com/atomicstack/tui-titlebar/internal/menu"
	"github.com/atomicstack/tui-titlebar/internal/nav"
	"github.com/atomicstack/tui-titlebar/internal/theme"
	"github.com/atomicstack/tui-titlebar/internal/ui/command"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTitle = "titlebar"
	platformMac  = "darwin"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the title bar model.
type Options struct {
	Title    string
	MenuFile string
	Items    []menu.Item
	Style    nav.Style
	Platform string
	AutoHide bool
	Overflow bool
	Controls bool

	// DisableMinimize and DisableMaximize draw the control but ignore clicks.
	DisableMinimize bool
	DisableMaximize bool

	AltKey     string
	ShowFooter bool
	Verbose    bool
	Maximized  bool
	Width      int
	Height     int
	Window     any
}

// Model implements the Bubble Tea model for the title bar.
type Model struct {
	title      string
	menuFile   string
	items      []menu.Item
	style      nav.Style
	platform   string
	autoHide   bool
	overflow   bool
	controls   bool
	altKey     string
	showFooter bool
	verbose    bool
	window     any

	disableMinimize bool
	disableMaximize bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	maximized   bool
	minimized   bool

	windowFocused bool
	menuOpen      bool
	buttonHover   bool
	mouseOver     int

	engine   *nav.Engine
	keys     *nav.Broadcaster
	registry *menu.Registry
	bus      *command.Bus
	pending  []tea.Cmd

	measuredWidths []int

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	help   help.Model
	keyMap keyMap

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the title bar with its menu engine.
func NewModel(opts Options) *Model {
	title := opts.Title
	if title == "" {
		title = defaultTitle
	}
	style := opts.Style
	if style == "" {
		style = nav.StyleHorizontal
	}
	items := opts.Items
	if items == nil {
		items = menu.DefaultItems()
	}
	m := &Model{
		title:           title,
		menuFile:        opts.MenuFile,
		items:           menu.CloneItems(items),
		style:           style,
		platform:        opts.Platform,
		autoHide:        opts.AutoHide,
		overflow:        opts.Overflow,
		controls:        opts.Controls,
		disableMinimize: opts.DisableMinimize,
		disableMaximize: opts.DisableMaximize,
		altKey:          opts.AltKey,
		showFooter:      opts.ShowFooter,
		verbose:         opts.Verbose,
		window:          opts.Window,
		maximized:       opts.Maximized,
		windowFocused:   true,
		mouseOver:       -1,
		keys:            nav.NewBroadcaster(),
		registry:        menu.BuildRegistry(),
		bus:             command.New(),
		help:            help.New(),
		keyMap:          newKeyMap(opts.AltKey),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.attachEngine()
	m.syncMeasurements()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):        m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(tea.FocusMsg{}):        m.handleFocusMsg,
		reflect.TypeOf(tea.BlurMsg{}):         m.handleBlurMsg,
		reflect.TypeOf(menu.ActionResult{}):   m.handleActionResultMsg,
		reflect.TypeOf(menu.StyleToggleMsg{}): m.handleStyleToggleMsg,
		reflect.TypeOf(menu.ReloadMsg{}):      m.handleReloadMsg,
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
	m.syncMeasurements()
	if len(m.pending) > 0 {
		cmds = append(cmds, m.pending...)
		m.pending = nil
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// menuEnabled reports whether this platform draws an in-window menu at all.
func (m *Model) menuEnabled() bool {
	return m.platform != platformMac
}

func (m *Model) attachEngine() {
	if !m.menuEnabled() {
		m.engine = nil
		return
	}
	m.measuredWidths = nil
	m.engine = nav.New(m.items, nav.Options{
		Style:          m.style,
		EnableOverflow: m.overflow,
		Window:         m.window,
		OnOpen:         func(open bool) { m.menuOpen = open },
		OnButtonHover:  func(hovering bool) { m.buttonHover = hovering },
		OnActivate:     m.onActivate,
	})
	m.engine.Attach(m.keys)
	if !m.windowFocused {
		m.engine.SetWindowFocus(false)
	}
}

func (m *Model) detachEngine() {
	if m.engine == nil {
		return
	}
	m.engine.Detach()
	m.engine = nil
	m.menuOpen = false
	m.buttonHover = false
	m.mouseOver = -1
}

func (m *Model) handleFocusMsg(tea.Msg) tea.Cmd {
	m.windowFocused = true
	events.UI.WindowFocus(true)
	if m.engine != nil {
		m.engine.SetWindowFocus(true)
	}
	return nil
}

func (m *Model) handleBlurMsg(tea.Msg) tea.Cmd {
	m.windowFocused = false
	events.UI.WindowFocus(false)
	if m.engine != nil {
		m.engine.SetWindowFocus(false)
	}
	return nil
}

// menuVisible reports whether the menu region is drawn this frame.
func (m *Model) menuVisible() bool {
	if m.engine == nil {
		return false
	}
	if !m.autoHide {
		return true
	}
	return m.buttonHover || m.menuOpen || m.engine.FocusIndex() >= 0
}
