package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"twinpage/internal/processor"
	"twinpage/internal/tui"
)

// withProgress runs fn while a progress view consumes its updates. Quitting
// the view cancels the context handed to fn.
func withProgress(fn func(ctx context.Context, updates chan<- processor.ProgressUpdate) error) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan processor.ProgressUpdate, 64)
	program := tea.NewProgram(tui.NewModel(updates, cancel))

	uiDone := make(chan struct{})
	go func() {
		_, _ = program.Run()
		close(uiDone)
	}()

	err := fn(ctx, updates)
	close(updates)
	<-uiDone
	return err
}
