// Package static provides non-interactive terminal output components.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/wtree/wt/internal/git"
	"github.com/wtree/wt/internal/ui/styles"
)

// WorktreeHeaders are the column headers for WorktreeTableRow.
var WorktreeHeaders = []string{"PATH", "BRANCH", "HEAD", "KIND"}

const shortHashLen = 7

// WorktreeTableRow returns the table cells for one worktree.
func WorktreeTableRow(wt git.Worktree) []string {
	head := wt.Head
	if len(head) > shortHashLen {
		head = head[:shortHashLen]
	}

	branch := wt.Branch.String()
	kind := "worktree"
	switch {
	case wt.Bare:
		kind = "bare"
		branch = "-"
	case wt.Branch.IsDetached():
		branch = styles.WarningStyle.Render(branch)
	}

	return []string{wt.Path, branch, head, kind}
}

// RenderWorktrees renders worktrees as a borderless table.
func RenderWorktrees(worktrees []git.Worktree) string {
	rows := make([][]string, 0, len(worktrees))
	for _, wt := range worktrees {
		rows = append(rows, WorktreeTableRow(wt))
	}
	return RenderTable(WorktreeHeaders, rows)
}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Bold.PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}
