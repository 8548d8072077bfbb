package prompt

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"github.com/wtree/wt/internal/ui/styles"
)

const maxVisible = 10

type stringSource []string

func (s stringSource) String(i int) string { return s[i] }
func (s stringSource) Len() int            { return len(s) }

type fuzzyModel struct {
	title     string
	options   []string
	filter    string
	matches   []fuzzy.Match // sorted best first when filtering
	cursor    int
	selected  int // index into options, -1 if none
	done      bool
	cancelled bool
}

func newFuzzy(title string, options []string) fuzzyModel {
	m := fuzzyModel{title: title, options: options, selected: -1}
	m.applyFilter()
	return m
}

func (m *fuzzyModel) applyFilter() {
	if m.filter == "" {
		m.matches = make([]fuzzy.Match, len(m.options))
		for i, opt := range m.options {
			m.matches[i] = fuzzy.Match{Str: opt, Index: i}
		}
	} else {
		m.matches = fuzzy.FindFrom(m.filter, stringSource(m.options))
	}
	if m.cursor >= len(m.matches) {
		m.cursor = max(len(m.matches)-1, 0)
	}
}

func (m fuzzyModel) Init() tea.Cmd {
	return nil
}

func (m fuzzyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	case "enter":
		if len(m.matches) == 0 {
			return m, nil
		}
		m.selected = m.matches[m.cursor].Index
		m.done = true
		return m, tea.Quit
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "ctrl+n":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
	case "backspace":
		if m.filter != "" {
			r := []rune(m.filter)
			m.filter = string(r[:len(r)-1])
			m.applyFilter()
		}
	default:
		if key.Text != "" {
			m.filter += key.Text
			m.cursor = 0
			m.applyFilter()
		}
	}
	return m, nil
}

func (m fuzzyModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m fuzzyModel) render() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(m.title) + "\n")
	b.WriteString(styles.MutedStyle.Render("Filter: ") + m.filter + "\n\n")

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.matches))

	if start > 0 {
		b.WriteString(styles.MutedStyle.Render("  ↑ more above") + "\n")
	}
	for i := start; i < end; i++ {
		match := m.matches[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(cursor + highlight(match, i == m.cursor) + "\n")
	}
	if end < len(m.matches) {
		b.WriteString(styles.MutedStyle.Render("  ↓ more below") + "\n")
	}
	if len(m.matches) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No matching items") + "\n")
	}

	b.WriteString("\n" + styles.MutedStyle.Render("↑/↓ select • type to filter • enter confirm • esc cancel"))
	return b.String()
}

// highlight renders a match with its matched characters emphasized.
func highlight(match fuzzy.Match, selected bool) string {
	base := styles.NormalStyle
	if selected {
		base = styles.AccentStyle
	}
	if len(match.MatchedIndexes) == 0 {
		return base.Render(match.Str)
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	// MatchedIndexes are byte offsets
	var b strings.Builder
	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// FuzzySelect shows a filterable list and returns the user's selection.
// Typing narrows the list with fuzzy matching; the returned Index refers
// to options.
func FuzzySelect(title string, options []string) (SelectResult, error) {
	if len(options) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	final, err := run(newFuzzy(title, options))
	if err != nil {
		return SelectResult{}, err
	}
	m := final.(fuzzyModel)

	if m.cancelled || m.selected < 0 || m.selected >= len(options) {
		return SelectResult{Cancelled: true}, nil
	}
	return SelectResult{Value: options[m.selected], Index: m.selected}, nil
}
