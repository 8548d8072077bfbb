package prompt

import (
	"testing"
)

var modeOptions = []string{"Create a new branch", "Use an existing branch"}

func pressSelect(m selectModel, keys ...string) selectModel {
	for _, k := range keys {
		updated, _ := m.Update(keyPress(k))
		m = updated.(selectModel)
	}
	return m
}

func TestSelectModel_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		keys          []string
		wantDone      bool
		wantCancelled bool
		wantSelected  int
	}{
		{"enter picks first", []string{"enter"}, true, false, 0},
		{"down then enter", []string{"down", "enter"}, true, false, 1},
		{"number shortcut", []string{"2"}, true, false, 1},
		{"number out of range ignored", []string{"7"}, false, false, -1},
		{"q cancels", []string{"q"}, true, true, -1},
		{"esc cancels", []string{"esc"}, true, true, -1},
		{"ctrl+c cancels", []string{"ctrl+c"}, true, true, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := pressSelect(newSelect("Create worktree from", modeOptions), tt.keys...)

			if m.done != tt.wantDone {
				t.Errorf("done = %v, want %v", m.done, tt.wantDone)
			}
			if m.cancelled != tt.wantCancelled {
				t.Errorf("cancelled = %v, want %v", m.cancelled, tt.wantCancelled)
			}
			if m.selected != tt.wantSelected {
				t.Errorf("selected = %d, want %d", m.selected, tt.wantSelected)
			}
		})
	}
}

func TestSelectModel_ViewDone(t *testing.T) {
	t.Parallel()

	m := pressSelect(newSelect("Create worktree from", modeOptions), "enter")
	if got := m.render(); got != "" {
		t.Errorf("render() after selection = %q, want empty", got)
	}
}

func TestSelect_Empty(t *testing.T) {
	t.Parallel()

	res, err := Select("Create worktree from", nil)
	if err != nil {
		t.Fatalf("Select(nil) error = %v", err)
	}
	if !res.Cancelled {
		t.Error("Select(nil) should report cancelled")
	}
}
