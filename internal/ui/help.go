package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

type helpKey struct {
	keys string
	desc string
}

type helpSection struct {
	title string
	keys  []helpKey
}

var helpSections = []helpSection{
	{"Navigation", []helpKey{
		{"↑/↓/←/→, h/j/k/l", "Move the cursor"},
		{"PgUp/PgDn", "Page up/down"},
		{"Home/End, G", "First/last item"},
		{"Enter", "Open the selection or the item under the cursor"},
		{"u", "Parent folder"},
		{"Backspace, Alt+←", "Back"},
		{"Alt+→", "Forward"},
		{":", "Go to a location (~ expands to home)"},
		{"r", "Refresh the listing"},
	}},
	{"Selection", []helpKey{
		{"Space", "Toggle the item under the cursor"},
		{"Shift+arrows", "Extend the selection from the anchor"},
		{"Ctrl+A", "Select all"},
		{"Esc", "Clear the selection"},
		{"Click", "Select one item"},
		{"Ctrl+click", "Toggle an item"},
		{"Shift+click", "Select a range"},
		{"Double click", "Open"},
		{"Drag", "Marquee select"},
		{"Alt+drag", "Lasso select"},
		{"Ctrl at release", "Add the gesture to the selection"},
		{"y", "Copy the selected paths"},
	}},
	{"Tabs", []helpKey{
		{"t", "New tab"},
		{"w", "Close tab"},
		{"[ / ]", "Previous/next tab"},
		{"1-9", "Jump to tab"},
	}},
	{"View", []helpKey{
		{"v", "Cycle grid, list and masonry"},
		{"s", "Sort options"},
		{"g", "Group options"},
		{"z", "Collapse or expand the group under the cursor"},
		{"Z", "Expand all groups"},
		{".", "Show hidden files"},
		{"p", "Toggle the preview pane"},
	}},
	{"Search & Filter", []helpKey{
		{"/", "Search names"},
		{"n / N", "Next/previous match"},
		{"F, Ctrl+F", "Filter the listing"},
	}},
	{"Sidebar", []helpKey{
		{"Tab, Shift+Tab", "Focus the sidebar"},
		{"Enter", "Open the entry"},
		{"o, t", "Open the entry in a new tab"},
		{"b", "Add or remove the current folder from favourites"},
	}},
	{"Other", []helpKey{
		{"?", "Show this help"},
		{"q, Ctrl+C", "Quit"},
	}},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	width := 0
	for _, s := range helpSections {
		for _, k := range s.keys {
			if w := runewidth.StringWidth(k.keys); w > width {
				width = w
			}
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("filegrip Help"))
	help.WriteString("\n")
	for _, s := range helpSections {
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, k := range s.keys {
			help.WriteString(fmt.Sprintf("  %s  %s\n",
				keyStyle.Render(runewidth.FillRight(k.keys, width)),
				descStyle.Render(k.desc)))
		}
	}
	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Press q to return"))
	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("failed to release terminal: %w", err)
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Do not write on exit, it would mess with our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
