package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"filegrip/internal/ui/input/types"
)

// cursorGlyph marks the caret in prompt text
const cursorGlyph = "▌"

// InputTransformer turns the input handler's mode into prompt text
type InputTransformer struct {
	mode      types.Mode
	prompt    string
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      types.ModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode and its prompt
func (it *InputTransformer) SetMode(mode types.Mode, prompt string) {
	it.mode = mode
	it.prompt = prompt
}

// GetPrompt returns the prompt label, empty outside text modes
func (it *InputTransformer) GetPrompt() string {
	if !it.isText() {
		return ""
	}
	return it.prompt
}

// GetInputText returns the typed text with the caret drawn in
func (it *InputTransformer) GetInputText() string {
	if !it.isText() {
		return ""
	}
	value := []rune(it.textInput.Value())
	pos := it.textInput.Position()
	if pos < 0 || pos > len(value) {
		pos = len(value)
	}
	return string(value[:pos]) + cursorGlyph + string(value[pos:])
}

func (it *InputTransformer) isText() bool {
	switch it.mode {
	case types.ModeSearch, types.ModeFilter, types.ModeLocation:
		return true
	}
	return false
}
