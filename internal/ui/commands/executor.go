package commands

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmThreshold is the number of files above which opening asks first
const ConfirmThreshold = 5

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx *CommandContext) *Executor {
	return &Executor{ctx: ctx}
}

// ExecuteOpen opens paths directly, or parks them for confirmation when
// there are many. It reports whether confirmation is needed.
func (e *Executor) ExecuteOpen(paths []string) (tea.Cmd, bool) {
	if len(paths) > ConfirmThreshold {
		return NewConfirmOpenCommand(e.ctx, paths).Execute(), true
	}
	return NewOpenFilesCommand(e.ctx, paths).Execute(), false
}

// ExecuteConfirmedOpen opens the parked paths
func (e *Executor) ExecuteConfirmedOpen() tea.Cmd {
	cmd := NewOpenFilesCommand(e.ctx, e.ctx.State.PendingOpen)
	return cmd.Execute()
}

// ExecuteCopyPaths creates and executes a copy command
func (e *Executor) ExecuteCopyPaths(paths []string) tea.Cmd {
	cmd := NewCopyPathsCommand(e.ctx, paths)
	return cmd.Execute()
}

// ExecuteToggleFavorite creates and executes a favourite command
func (e *Executor) ExecuteToggleFavorite(path string) tea.Cmd {
	cmd := NewToggleFavoriteCommand(e.ctx, path)
	return cmd.Execute()
}
