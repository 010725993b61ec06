package selection

// Store is where the active tab keeps its selection and render order
type Store interface {
	Selection() []string
	SetSelection(ids []string)
	RenderOrder() []string
}

// State holds selection state that is not stored on the tab
type State struct {
	Anchor string // last single or toggled item, start of shift ranges
}

// GestureMode distinguishes the two drag gestures
type GestureMode int

const (
	GestureBox GestureMode = iota
	GestureLasso
)

func (m GestureMode) String() string {
	if m == GestureLasso {
		return "lasso"
	}
	return "box"
}

// Event types
type AnchorChangedEvent struct {
	Anchor string
}

type GestureFinalizedEvent struct {
	Mode     GestureMode
	Hits     []string
	Additive bool
	Path     string // smoothed lasso path, empty for boxes
}
