package prompt

import (
	"errors"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned when a prompt is needed but stdin is not a
// terminal.
var ErrNotInteractive = errors.New("interactive prompt requires a terminal")

// Interactive reports whether stdin is attached to a terminal.
func Interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// run starts a prompt program on stderr with the terminal's color profile.
func run(model tea.Model) (tea.Model, error) {
	if !Interactive() {
		return nil, ErrNotInteractive
	}
	p := tea.NewProgram(model,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(colorprofile.Detect(os.Stderr, os.Environ())),
	)
	return p.Run()
}

// Terminal implements the prompt set on the real terminal.
type Terminal struct{}

// Confirm calls the package-level Confirm.
func (Terminal) Confirm(msg string, defaultYes bool) (ConfirmResult, error) {
	return Confirm(msg, defaultYes)
}

// TextInput calls the package-level TextInput.
func (Terminal) TextInput(msg, placeholder string, validate func(string) error) (TextInputResult, error) {
	return TextInput(msg, placeholder, validate)
}

// Select calls the package-level Select.
func (Terminal) Select(title string, options []string) (SelectResult, error) {
	return Select(title, options)
}

// FuzzySelect calls the package-level FuzzySelect.
func (Terminal) FuzzySelect(title string, options []string) (SelectResult, error) {
	return FuzzySelect(title, options)
}
