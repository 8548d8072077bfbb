package prompt

import (
	"fmt"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"

	"github.com/wtree/wt/internal/ui/styles"
)

// SelectResult holds the result of a selection prompt. Index refers to
// the options slice passed in, regardless of any filtering.
type SelectResult struct {
	Value     string
	Index     int
	Cancelled bool
}

type listItem struct {
	title string
	index int
}

func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.title }

type selectModel struct {
	list      list.Model
	count     int
	done      bool
	cancelled bool
	selected  int
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(listItem); ok {
				m.selected = item.index
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
		// 1-9 pick an option directly
		if k := msg.String(); len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			if n := int(k[0] - '1'); n < m.count {
				m.selected = n
				m.done = true
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m selectModel) render() string {
	if m.done {
		return ""
	}
	return m.list.View()
}

func newSelect(prompt string, options []string) selectModel {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		title := opt
		if i < 9 {
			title = fmt.Sprintf("%d. %s", i+1, opt)
		}
		items[i] = listItem{title: title, index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	delegate.Styles.SelectedTitle = styles.AccentStyle

	l := list.New(items, delegate, 60, min(len(options)+6, 20))
	l.Title = prompt
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return selectModel{
		list:     l,
		count:    len(options),
		selected: -1,
	}
}

// Select shows a short numbered menu and returns the user's selection.
// Use FuzzySelect for long lists.
func Select(prompt string, options []string) (SelectResult, error) {
	if len(options) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	finalModel, err := run(newSelect(prompt, options))
	if err != nil {
		return SelectResult{}, err
	}
	m := finalModel.(selectModel)

	if m.cancelled || m.selected < 0 || m.selected >= len(options) {
		return SelectResult{Cancelled: true}, nil
	}

	return SelectResult{
		Value: options[m.selected],
		Index: m.selected,
	}, nil
}
