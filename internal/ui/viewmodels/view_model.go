package viewmodels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"filegrip/internal/domain"
	"filegrip/internal/thumbnails"
	"filegrip/internal/ui/coordinator"
	"filegrip/internal/ui/input/types"
	"filegrip/internal/ui/services/selection"
	"filegrip/internal/ui/services/sorting"
	"filegrip/internal/ui/state"
	"filegrip/internal/ui/views"
)

// ShortHelp is the key summary shown on the bottom line
var ShortHelp = []key.Binding{
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "select")),
	key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "group")),
	key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view")),
	key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "new tab")),
	key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	coord            *coordinator.Coordinator
	thumbs           *thumbnails.Cache
	width            int
	height           int
	help             help.Model
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model. thumbs may be nil.
func NewViewModel(appState *state.AppState, coord *coordinator.Coordinator, thumbs *thumbnails.Cache, textInput textinput.Model) *ViewModel {
	h := help.New()
	plain := lipgloss.NewStyle()
	h.Styles = help.Styles{
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		Ellipsis:       plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}
	return &ViewModel{
		state:            appState,
		coord:            coord,
		thumbs:           thumbs,
		help:             h,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width - 2
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode, prompt string) {
	vm.inputTransformer.SetMode(mode, prompt)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	c := vm.coord
	tab := c.Tabs.ActiveTab()
	mode := vm.inputTransformer.mode

	s := views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Tabs:           vm.TabViews(),
		Location:       tab.Location,
		Info:           vm.info(),
		Filter:         c.Groups.Filter(),
		Loading:        vm.state.IsLoading(tab.Location),
		Sidebar:        vm.state.Sidebar,
		SidebarIndex:   vm.state.SidebarIndex,
		SidebarFocused: mode == types.ModeSidebar,
		Layout:         c.Layout(),
		Scroll:         c.Navigator.ViewportOffset(),
		Selected:       toSet(c.Selection.Selection()),
		Matches:        vm.matches(),
		ShowPreview:    vm.state.ShowPreview,
		Prompt:         vm.inputTransformer.GetPrompt(),
		Input:          vm.inputTransformer.GetInputText(),
		Status:         vm.state.StatusMessage,
		StatusLevel:    vm.state.StatusLevel,
		Failed:         vm.state.BackendError,
		HelpLine:       vm.help.ShortHelpView(ShortHelp),
	}

	if item, ok := c.CursorItem(); ok {
		s.Cursor = item.ID
		s.Preview = &item
	}
	if vm.thumbs != nil {
		s.Thumbnail = func(id string) *thumbnails.Image {
			img, _ := vm.thumbs.Get(id)
			return img
		}
	}
	if g := c.Selection.Gesture(); g != nil && g.Moved() && !g.Done() {
		s.Under = toSet(g.UnderSelection())
		s.Gesture = &views.GestureView{
			Lasso:  g.Mode() == selection.GestureLasso,
			Box:    g.Box(),
			Points: g.Smoothed(),
			Glow:   g.Glow(),
		}
	}
	if c.Sorting.IsOpen() {
		s.Overlay = &views.OverlayView{
			Title:   overlayTitle(c.Sorting.Current()),
			Options: c.Sorting.Options(),
			Cursor:  c.Sorting.Cursor(),
		}
	}
	if mode == types.ModeConfirmOpen && len(vm.state.PendingOpen) > 0 {
		s.Confirm = fmt.Sprintf("Open %d files?", len(vm.state.PendingOpen))
	}
	if len(s.Layout.Slots) == 0 && len(s.Layout.Headers) == 0 {
		s.Empty = "This folder is empty"
		if s.Filter != "" {
			s.Empty = "No items match the filter"
		}
	}
	return s
}

// TabViews lists the open tabs for the tab bar
func (vm *ViewModel) TabViews() []views.TabView {
	active := vm.coord.Tabs.ActiveID()
	tabs := vm.coord.Tabs.Tabs()
	out := make([]views.TabView, len(tabs))
	for i, t := range tabs {
		out[i] = views.TabView{ID: t.ID, Title: domain.Title(t.Location), Active: t.ID == active}
	}
	return out
}

// info is the summary at the right of the location line
func (vm *ViewModel) info() string {
	c := vm.coord
	tab := c.Tabs.ActiveTab()
	items := c.Query.Items(c.Query.Order())
	var total int64
	for _, item := range items {
		if !item.IsDir {
			total += item.Size
		}
	}

	order := "↑"
	if tab.SortOrder == domain.OrderDesc {
		order = "↓"
	}
	text := fmt.Sprintf("%s items (%s)", humanize.Comma(int64(len(items))), humanize.Bytes(uint64(total)))
	if n := c.Selection.Count(); n > 0 {
		text += fmt.Sprintf(" · %d selected", n)
	}
	if c.Search.GetQuery() != "" {
		text += fmt.Sprintf(" · %d matches", c.Search.GetMatchCount())
	}
	return fmt.Sprintf("%s · %s · %s %s", text, tab.ViewMode, sorting.SortLabel(tab.SortMode), order)
}

func (vm *ViewModel) matches() map[string]bool {
	c := vm.coord
	if c.Search.GetQuery() == "" {
		return nil
	}
	out := make(map[string]bool)
	for i, id := range c.Query.Order() {
		if c.Search.IsMatch(i) {
			out[id] = true
		}
	}
	return out
}

func overlayTitle(o sorting.Overlay) string {
	if o == sorting.OverlayGroup {
		return "Group by"
	}
	return "Sort by"
}

func toSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}
