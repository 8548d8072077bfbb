package prompt

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/wtree/wt/internal/ui/styles"
)

// TextInputResult holds the result of a text input prompt.
type TextInputResult struct {
	Value     string
	Cancelled bool
}

type textInputModel struct {
	textInput textinput.Model
	prompt    string
	validate  func(string) error
	err       error
	done      bool
	cancelled bool
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if m.validate != nil {
				if err := m.validate(m.textInput.Value()); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m textInputModel) render() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.prompt + "\n" + m.textInput.View())
	if m.err != nil {
		b.WriteString("\n" + styles.ErrorStyle.Render(m.err.Error()))
	}
	return b.String()
}

func newTextInput(prompt, placeholder string, validate func(string) error) textInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 255
	ti.SetWidth(50)

	return textInputModel{
		textInput: ti,
		prompt:    prompt,
		validate:  validate,
	}
}

// TextInput shows a text input prompt and returns the user's input.
// When validate is non-nil, enter is only accepted once it returns nil;
// until then its error is shown under the input.
func TextInput(prompt, placeholder string, validate func(string) error) (TextInputResult, error) {
	final, err := run(newTextInput(prompt, placeholder, validate))
	if err != nil {
		return TextInputResult{}, err
	}
	m := final.(textInputModel)
	return TextInputResult{
		Value:     m.textInput.Value(),
		Cancelled: m.cancelled,
	}, nil
}
