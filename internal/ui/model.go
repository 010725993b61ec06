package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"filegrip/internal/config"
	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
	listings "filegrip/internal/logic"
	"filegrip/internal/sidebar"
	"filegrip/internal/thumbnails"
	"filegrip/internal/ui/commands"
	"filegrip/internal/ui/coordinator"
	"filegrip/internal/ui/handlers"
	"filegrip/internal/ui/input"
	"filegrip/internal/ui/mouse"
	"filegrip/internal/ui/services/events"
	"filegrip/internal/ui/services/selection"
	"filegrip/internal/ui/services/tabs"
	"filegrip/internal/ui/state"
	"filegrip/internal/ui/viewmodels"
	"filegrip/internal/ui/views"
)

// How long a status message stays up
const statusTimeout = 4 * time.Second

// Delay of the lasso glow behind the pointer
const glowDelay = 16 * time.Millisecond

// Options are the collaborators the model works with. Everything but Bus
// and Config may be left empty.
type Options struct {
	Bus        eventbus.EventBus
	Config     *config.Config
	Thumbnails *thumbnails.Cache
	Opener     commands.FileOpener
	Favorites  sidebar.Favorites
	Clipboard  func(text string) error
	TabIDs     func() string
	Home       string

	// ReadyMarker prints a marker line once the first listing is shown
	ReadyMarker bool
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	frame       views.Frame
	inPagerMode bool
	dirty       bool
	statusSeq   int
	lastStatus  string
	home        string
	readyMarker bool
	ready       bool

	// Handlers
	coord        *coordinator.Coordinator
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	clicks       *mouse.Handler

	// Thumbnail observers by item id
	thumbs    *thumbnails.Cache
	observers map[string]func()

	ctx    context.Context
	cancel context.CancelFunc
	log    logrus.FieldLogger

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ids := opts.TabIDs
	if ids == nil {
		ids = uuid.NewString
	}
	home := opts.Home
	if home == "" {
		home = userHome()
	}
	start := cfg.StartLocation
	if start == "" {
		start = domain.HomeLocation
	}

	appState := state.NewAppState()
	appState.ShowPreview = cfg.UISettings.ShowPreview

	uiBus := events.NewBus()
	coord := coordinator.NewCoordinator(uiBus, opts.Bus, listings.NewMemoryListingStore(), start,
		tabs.WithIDGenerator(ids),
		tabs.WithDefaults(tabs.Defaults{
			ViewMode:  cfg.UISettings.DefaultView,
			GroupMode: cfg.UISettings.DefaultGroup,
			SortMode:  cfg.UISettings.DefaultSort,
			SortOrder: cfg.UISettings.DefaultOrder,
		}),
	)
	coord.Groups.SetShowHidden(cfg.UISettings.ShowHidden)

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		state:        appState,
		home:         home,
		readyMarker:  opts.ReadyMarker,
		coord:        coord,
		renderer:     views.NewRenderer(),
		eventHandler: handlers.NewEventHandler(appState, coord),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		clicks:       mouse.NewHandler(),
		thumbs:       opts.Thumbnails,
		observers:    make(map[string]func()),
		ctx:          ctx,
		cancel:       cancel,
		log:          logrus.WithField("component", "ui"),
		dirty:        true,
	}

	clipboard := opts.Clipboard
	if clipboard == nil {
		clipboard = writeClipboard
	}
	m.cmdExecutor = commands.NewExecutor(&commands.CommandContext{
		State:     appState,
		Bus:       opts.Bus,
		Opener:    opts.Opener,
		Favorites: opts.Favorites,
		Clipboard: clipboard,
	})
	m.viewModel = viewmodels.NewViewModel(appState, coord, opts.Thumbnails, textinput.New())

	m.subscribeToEvents(uiBus)
	return m
}

// subscribeToEvents marks the presentation dirty whenever it may have changed
func (m *Model) subscribeToEvents(bus events.EventBus) {
	markDirty := func(interface{}) { m.dirty = true }
	for _, t := range []string{
		"tabs.ActiveTabChangedEvent",
		"tabs.ViewConfigChangedEvent",
		"groups.FilterChangedEvent",
		"groups.GroupExpandedEvent",
		"groups.GroupCollapsedEvent",
	} {
		bus.Subscribe(t, markDirty)
	}

	bus.Subscribe("tabs.LocationChangedEvent", func(e interface{}) {
		ev := e.(tabs.LocationChangedEvent)
		m.dirty = true
		if m.state.BackendReady {
			m.state.SetLoading(ev.Location, true)
		}
	})

	bus.Subscribe("selection.GestureFinalizedEvent", func(e interface{}) {
		ev := e.(selection.GestureFinalizedEvent)
		entry := m.log.WithFields(logrus.Fields{"mode": ev.Mode.String(), "hits": len(ev.Hits), "additive": ev.Additive})
		if ev.Mode == selection.GestureLasso {
			entry = entry.WithField("path", ev.Path)
		}
		entry.Debug("gesture finalized")
	})
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Coordinator exposes the services behind the model
func (m *Model) Coordinator() *coordinator.Coordinator {
	return m.coord
}

// State exposes the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Close cancels outstanding thumbnail observers
func (m *Model) Close() {
	for id, cancel := range m.observers {
		cancel()
		delete(m.observers, id)
	}
	m.cancel()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dirty = true

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.handleNonKeyboardMsg(msg))
	}

	cmds = append(cmds, m.afterUpdate()...)
	return m, tea.Batch(cmds...)
}

// handleKey runs a key press through the input modes
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Once startup failed only quitting is left
	if m.state.Failed() {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m.quit()
		}
		return nil
	}

	// Escape drops a drag in progress and leaves the selection alone
	if msg.Type == tea.KeyEsc && m.coord.Selection.Gesture() != nil {
		m.coord.Selection.AbortGesture()
		m.clicks.EndDrag()
		return nil
	}

	ctx := &input.ModelContext{
		Tabs:      m.coord.Tabs,
		Selection: m.coord.Selection,
		Query:     m.coord.Query,
		Cursor:    m.coord.Navigator.Index(),
		Search:    m.coord.Search.GetQuery(),
	}
	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		return m.eventHandler.HandleEvent(msg.Event)

	case glowMsg:
		if g := m.coord.Selection.Gesture(); g != nil {
			g.AdvanceFrame(msg.frame)
		}

	case helpPagerMsg:
		m.state.ShowHelp = false
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			m.log.WithError(msg.err).Warn("help pager failed")
		}

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.ClearStatus()
			m.lastStatus = ""
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case quitMsg:
		return m.quit()
	}
	return nil
}

// afterUpdate brings derived state up to date after any message: layout,
// hit regions, thumbnail observers, status expiry and the ready marker
func (m *Model) afterUpdate() []tea.Cmd {
	var cmds []tea.Cmd

	if m.width > 0 && m.height > 0 {
		frame := views.NewFrame(m.width, m.height, m.state.ShowPreview)
		if frame != m.frame {
			m.frame = frame
			m.dirty = true
		}
		m.coord.SetViewport(coordinator.Viewport{
			Width:   frame.Grid.W,
			Height:  frame.Grid.H,
			OriginX: frame.Grid.X,
			OriginY: frame.Grid.Y,
		})
		m.state.ViewportHeight = frame.Grid.H
	}
	if m.dirty {
		m.dirty = false
		m.coord.Rebuild()
		m.coord.Search.Refresh()
	}
	m.refreshHitMap()
	m.observeThumbnails()

	if m.state.StatusMessage != m.lastStatus {
		m.lastStatus = m.state.StatusMessage
		if m.lastStatus != "" {
			m.statusSeq++
			seq := m.statusSeq
			cmds = append(cmds, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
				return clearStatusMsg{seq: seq}
			}))
		}
	}

	if !m.ready && m.state.BackendReady && !m.state.IsLoading(m.coord.Tabs.ActiveTab().Location) {
		m.ready = true
		if m.bus != nil {
			m.bus.Publish(eventbus.AppReadyEvent{})
		}
		if m.readyMarker {
			cmds = append(cmds, tea.Println("__READY__"))
		}
	}
	return cmds
}

// refreshHitMap records the clickable chrome and items of the next frame
func (m *Model) refreshHitMap() {
	hits := m.clicks.HitMap
	hits.Clear()
	if m.width == 0 {
		return
	}
	add := func(regions []mouse.Region) {
		for _, r := range regions {
			hits.Add(r.ID, r.Rect, r.Data)
		}
	}

	add(views.TabZones(m.viewModel.TabViews(), m.frame.TabBar))
	if m.frame.HasSidebar {
		add(views.SidebarZones(m.state.Sidebar, m.frame.Sidebar))
	}
	grid := m.frame.Grid
	hits.Add(views.RegionGrid, grid, nil)

	l := m.coord.Layout()
	scroll := m.coord.Navigator.ViewportOffset()
	for _, s := range l.Visible(scroll, grid.H) {
		hits.Add("item:"+s.ID, mouse.Rect{X: grid.X + s.X, Y: grid.Y + s.Y - scroll, W: s.W, H: s.H}, s.ID)
	}
	add(views.HeaderZones(l, scroll, grid))
}

func (m *Model) quit() tea.Cmd {
	m.Close()
	return tea.Quit
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode(), m.inputHandler.Prompt())
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
	return m.renderer.Render(m.viewModel.BuildViewState())
}

// setStatus is a shorthand for info messages
func (m *Model) setStatus(format string, args ...interface{}) {
	m.state.SetStatus(state.StatusInfo, fmt.Sprintf(format, args...))
}
