package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Location      lipgloss.Style
	Tab           lipgloss.Style
	TabActive     lipgloss.Style
	TabPlus       lipgloss.Style
	Sidebar       lipgloss.Style
	SidebarCursor lipgloss.Style
	SidebarActive lipgloss.Style
	Separator     lipgloss.Style
	Header        lipgloss.Style
	Name          lipgloss.Style
	Folder        lipgloss.Style
	Detail        lipgloss.Style
	Cursor        lipgloss.Style
	Selected      lipgloss.Style
	CursorOnSel   lipgloss.Style
	Under         lipgloss.Style
	Highlight     lipgloss.Style
	Marquee       lipgloss.Style
	Lasso         lipgloss.Style
	LassoGlow     lipgloss.Style
	Muted         lipgloss.Style
	Overlay       lipgloss.Style
	OverlayCursor lipgloss.Style
	OverlayActive lipgloss.Style
	Filter        lipgloss.Style
	Help          lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	ErrorScreen   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Location:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Tab:           lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236")),
		TabActive:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")).Bold(true),
		TabPlus:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Background(lipgloss.Color("236")),
		Sidebar:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		SidebarCursor: lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("231")),
		SidebarActive: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Separator:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Name:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Folder:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		Detail:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Cursor:        lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Selected:      lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("231")),
		CursorOnSel:   lipgloss.NewStyle().Background(lipgloss.Color("33")).Foreground(lipgloss.Color("231")),
		Under:         lipgloss.NewStyle().Background(lipgloss.Color("60")).Foreground(lipgloss.Color("231")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Marquee:       lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Lasso:         lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		LassoGlow:     lipgloss.NewStyle().Foreground(lipgloss.Color("159")).Bold(true),
		Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		OverlayCursor: lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("231")),
		OverlayActive: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Filter:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:          lipgloss.NewStyle().Faint(true),
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		ErrorScreen: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("203")).
			Foreground(lipgloss.Color("203")).
			Bold(true).
			Padding(1, 4),
	}
}
