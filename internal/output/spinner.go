package output

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// IsTTY reports whether stderr is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// RunWithSpinner runs action while a spinner titled title is shown.
// Without a TTY the action runs directly.
func RunWithSpinner(ctx context.Context, title string, action func() error) error {
	if !IsTTY() {
		return action()
	}

	var actionErr error
	s := spinner.New().
		Title(title).
		Context(ctx).
		Action(func() {
			actionErr = action()
		})

	if err := s.Run(); err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}

	return actionErr
}
