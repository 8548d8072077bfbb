package prompt

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(key string) tea.KeyPressMsg {
	if len(key) == 1 {
		return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
	}
	switch key {
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	default:
		return tea.KeyPressMsg{Code: rune(key[0])}
	}
}

func TestConfirmModel_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		key        string
		defaultYes bool
		confirmed  bool
		done       bool
		cancelled  bool
		wantCmd    bool
	}{
		{"y confirms", "y", false, true, true, false, true},
		{"Y confirms", "Y", false, true, true, false, true},
		{"n declines", "n", true, false, true, false, true},
		{"N declines", "N", true, false, true, false, true},
		{"enter defaults no", "enter", false, false, true, false, true},
		{"enter defaults yes", "enter", true, true, true, false, true},
		{"ctrl+c cancels", "ctrl+c", true, false, true, true, true},
		{"esc cancels", "esc", false, false, true, true, true},
		{"q cancels", "q", false, false, true, true, true},
		{"unhandled is no-op", "x", false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := confirmModel{prompt: "Continue?", defaultYes: tt.defaultYes}
			updated, cmd := m.Update(keyPress(tt.key))
			um := updated.(confirmModel)

			if um.confirmed != tt.confirmed {
				t.Errorf("confirmed = %v, want %v", um.confirmed, tt.confirmed)
			}
			if um.done != tt.done {
				t.Errorf("done = %v, want %v", um.done, tt.done)
			}
			if um.cancelled != tt.cancelled {
				t.Errorf("cancelled = %v, want %v", um.cancelled, tt.cancelled)
			}
			if (cmd != nil) != tt.wantCmd {
				t.Errorf("cmd nil = %v, want nil = %v", cmd == nil, !tt.wantCmd)
			}
		})
	}
}

func TestConfirmModel_ViewNotDone(t *testing.T) {
	t.Parallel()

	m := confirmModel{prompt: "Remove worktree?"}
	if got, want := m.render(), "Remove worktree? [y/N] "; got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}

	if got := (confirmModel{defaultYes: true}).hint(); got != "[Y/n]" {
		t.Errorf("hint() = %q, want %q", got, "[Y/n]")
	}
	if got := (confirmModel{}).hint(); got != "[y/N]" {
		t.Errorf("hint() = %q, want %q", got, "[y/N]")
	}
}

func TestConfirmModel_ViewDone(t *testing.T) {
	t.Parallel()

	m := confirmModel{prompt: "Remove worktree?", done: true}
	if got := m.render(); got != "" {
		t.Errorf("render() after answer = %q, want empty", got)
	}
	_ = m.View()
}

func TestConfirmModel_Init(t *testing.T) {
	t.Parallel()

	m := confirmModel{prompt: "test"}
	cmd := m.Init()
	if cmd != nil {
		t.Error("Init() should return nil cmd")
	}
}
