package commands

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"filegrip/internal/eventbus"
	"filegrip/internal/sidebar"
	"filegrip/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// FileOpener hands a path to the platform
type FileOpener interface {
	OpenFile(path string)
}

// CommandContext provides context for command execution
type CommandContext struct {
	State     *state.AppState
	Bus       eventbus.EventBus
	Opener    FileOpener
	Favorites sidebar.Favorites
	Clipboard func(text string) error
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// OpenFilesCommand opens files with the system handler
type OpenFilesCommand struct {
	ctx   *CommandContext
	paths []string
}

// NewOpenFilesCommand creates a new open command
func NewOpenFilesCommand(ctx *CommandContext, paths []string) *OpenFilesCommand {
	return &OpenFilesCommand{
		ctx:   ctx,
		paths: paths,
	}
}

// Execute starts the opens; outcomes arrive later as FileOpenedEvents
func (c *OpenFilesCommand) Execute() tea.Cmd {
	if len(c.paths) == 0 || c.ctx.Opener == nil {
		return nil
	}
	for _, p := range c.paths {
		c.ctx.Opener.OpenFile(p)
	}
	c.ctx.State.PendingOpen = nil
	c.ctx.State.SetStatus(state.StatusInfo, "Opening "+plural(len(c.paths), "file"))
	return nil
}

// ConfirmOpenCommand parks paths until the user confirms opening them
type ConfirmOpenCommand struct {
	ctx   *CommandContext
	paths []string
}

// NewConfirmOpenCommand creates a new confirm command
func NewConfirmOpenCommand(ctx *CommandContext, paths []string) *ConfirmOpenCommand {
	return &ConfirmOpenCommand{
		ctx:   ctx,
		paths: paths,
	}
}

// Execute records the pending paths
func (c *ConfirmOpenCommand) Execute() tea.Cmd {
	c.ctx.State.PendingOpen = append([]string(nil), c.paths...)
	return nil
}

// CopyPathsCommand copies paths to the clipboard, one per line
type CopyPathsCommand struct {
	ctx   *CommandContext
	paths []string
}

// NewCopyPathsCommand creates a new copy command
func NewCopyPathsCommand(ctx *CommandContext, paths []string) *CopyPathsCommand {
	return &CopyPathsCommand{
		ctx:   ctx,
		paths: paths,
	}
}

// Execute writes the clipboard
func (c *CopyPathsCommand) Execute() tea.Cmd {
	if len(c.paths) == 0 {
		c.ctx.State.SetStatus(state.StatusWarning, "Nothing to copy")
		return nil
	}
	if c.ctx.Clipboard == nil {
		return nil
	}
	if err := c.ctx.Clipboard(strings.Join(c.paths, "\n")); err != nil {
		c.ctx.State.SetStatus(state.StatusError, fmt.Sprintf("Copy failed: %v", err))
		if c.ctx.Bus != nil {
			c.ctx.Bus.Publish(eventbus.ErrorEvent{Message: "clipboard write failed", Err: err})
		}
		return nil
	}
	c.ctx.State.SetStatus(state.StatusInfo, "Copied "+plural(len(c.paths), "path"))
	return nil
}

// ToggleFavoriteCommand adds or removes a favourite directory
type ToggleFavoriteCommand struct {
	ctx  *CommandContext
	path string
}

// NewToggleFavoriteCommand creates a new favourite command
func NewToggleFavoriteCommand(ctx *CommandContext, path string) *ToggleFavoriteCommand {
	return &ToggleFavoriteCommand{
		ctx:  ctx,
		path: path,
	}
}

// Execute flips the favourite state of the path
func (c *ToggleFavoriteCommand) Execute() tea.Cmd {
	if c.path == "" || c.ctx.Favorites == nil {
		c.ctx.State.SetStatus(state.StatusWarning, "Only folders can be favourites")
		return nil
	}
	if c.ctx.Favorites.Contains(c.path) {
		c.ctx.Favorites.Remove(c.path)
		c.ctx.State.SetStatus(state.StatusInfo, "Removed from favourites")
		return nil
	}
	c.ctx.Favorites.Add(c.path)
	c.ctx.State.SetStatus(state.StatusInfo, "Added to favourites")
	return nil
}
