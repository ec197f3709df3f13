package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/Johannes-Berggren/branchsweep/internal/models"
)

const (
	selectedMarker = "-> "
	statusGap      = "     "
)

// BranchView is the selectable branch list.
type BranchView struct {
	branches  []models.Branch
	nameWidth int
	cursor    int
	width     int
}

func NewBranchView(branches []models.Branch) *BranchView {
	b := &BranchView{}
	b.SetBranches(branches)
	return b
}

// SetBranches replaces the list and keeps the cursor within bounds.
func (b *BranchView) SetBranches(branches []models.Branch) {
	b.branches = branches
	b.nameWidth = models.MaxNameWidth(branches)
	b.clamp()
}

func (b *BranchView) clamp() {
	if b.cursor > len(b.branches)-1 {
		b.cursor = len(b.branches) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
}

func (b *BranchView) MoveDown() {
	if b.cursor < len(b.branches)-1 {
		b.cursor++
	}
}

func (b *BranchView) MoveUp() {
	if b.cursor > 0 {
		b.cursor--
	}
}

func (b *BranchView) Cursor() int {
	return b.cursor
}

func (b *BranchView) Len() int {
	return len(b.branches)
}

func (b *BranchView) NameWidth() int {
	return b.nameWidth
}

func (b *BranchView) Branches() []models.Branch {
	return b.branches
}

func (b *BranchView) SelectedBranch() *models.Branch {
	if b.cursor >= 0 && b.cursor < len(b.branches) {
		return &b.branches[b.cursor]
	}
	return nil
}

// SetStatus updates the status of every branch with the given name.
func (b *BranchView) SetStatus(name, status string) bool {
	found := false
	for i := range b.branches {
		if b.branches[i].Name == name {
			b.branches[i].Status = status
			found = true
		}
	}
	return found
}

func (b *BranchView) SetWidth(width int) {
	b.width = width
}

func (b *BranchView) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true)

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("170")).
		Bold(true)

	currentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("green"))

	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	var out strings.Builder
	out.WriteString(headerStyle.Render("BRANCHES") + "\n\n")

	if len(b.branches) == 0 {
		out.WriteString(statusStyle.Render("   no local branches") + "\n")
		return out.String()
	}

	for i, branch := range b.branches {
		prefix := "   "
		if i == b.cursor {
			prefix = selectedMarker
		}

		line := prefix + branch.Name
		if status := flattenStatus(branch.Status); status != "" {
			pad := max(b.nameWidth-utf8.RuneCountInString(branch.Name), 0)
			line += strings.Repeat(" ", pad) + statusGap + status
		}
		if b.width > 0 {
			line = truncate.StringWithTail(line, uint(b.width), "…")
		}

		switch {
		case i == b.cursor:
			line = selectedStyle.Render(line)
		case branch.IsCurrent():
			line = currentStyle.Render(line)
		}

		out.WriteString(line + "\n")
	}

	return out.String()
}

// flattenStatus turns multi-line git output into a single display line.
func flattenStatus(status string) string {
	return strings.Join(strings.Fields(status), " ")
}
