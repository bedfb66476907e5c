// Package prompt is the interactive boundary of the installer.
//
// The decision engine never reads the terminal directly: it receives
// answers through the Prompter interface, so tests drive it with
// scripted input instead of simulated terminal interaction.
package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the user aborts a prompt. It is a hard
// failure for the run.
var ErrCancelled = errors.New("cancelled by user")

// Prompter supplies the user's answers to the installer.
type Prompter interface {
	// Input asks for a free-form string value.
	Input(title, placeholder string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(title string) (bool, error)
}

// Terminal implements Prompter on a real terminal.
type Terminal struct{}

// NewTerminal creates a terminal prompter.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Input asks for a free-form string value.
func (t *Terminal) Input(title, placeholder string) (string, error) {
	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Placeholder(placeholder).
			Value(&value),
	))
	if err := form.Run(); err != nil {
		return "", mapAbort(err)
	}
	if value == "" {
		value = placeholder
	}
	return value, nil
}

// Confirm asks a yes/no question.
func (t *Terminal) Confirm(title string) (bool, error) {
	var value bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Value(&value),
	))
	if err := form.Run(); err != nil {
		return false, mapAbort(err)
	}
	return value, nil
}

// mapAbort converts a user abort (ctrl-c, esc) into ErrCancelled.
func mapAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}
