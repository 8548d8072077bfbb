package prompt

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// ConfirmResult holds the result of a confirmation prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	prompt     string
	defaultYes bool
	confirmed  bool
	done       bool
	cancelled  bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "y", "Y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			m.confirmed = m.defaultYes
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) hint() string {
	if m.defaultYes {
		return "[Y/n]"
	}
	return "[y/N]"
}

func (m confirmModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m confirmModel) render() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s ", m.prompt, m.hint())
}

// Confirm shows a yes/no prompt and returns the user's choice.
// Enter without input picks defaultYes.
func Confirm(prompt string, defaultYes bool) (ConfirmResult, error) {
	final, err := run(confirmModel{prompt: prompt, defaultYes: defaultYes})
	if err != nil {
		return ConfirmResult{}, err
	}
	m := final.(confirmModel)
	return ConfirmResult{
		Confirmed: m.confirmed,
		Cancelled: m.cancelled,
	}, nil
}
