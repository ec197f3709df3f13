package models

import "unicode/utf8"

// CurrentBranchStatus marks the branch that is checked out.
const CurrentBranchStatus = "(current branch)"

// Branch is one local branch as listed by git.
type Branch struct {
	Name   string
	Status string // "", CurrentBranchStatus, or the last delete output
}

func (b Branch) IsCurrent() bool {
	return b.Status == CurrentBranchStatus
}

// DeleteMode selects between git branch -d and -D.
type DeleteMode int

const (
	DeleteSafe DeleteMode = iota
	DeleteForce
)

// Flag returns the git branch flag for the mode.
func (m DeleteMode) Flag() string {
	if m == DeleteForce {
		return "-D"
	}
	return "-d"
}

func (m DeleteMode) String() string {
	if m == DeleteForce {
		return "force"
	}
	return "safe"
}

// MaxNameWidth returns the widest branch name in runes, or 0 for no branches.
func MaxNameWidth(branches []Branch) int {
	width := 0
	for _, b := range branches {
		if n := utf8.RuneCountInString(b.Name); n > width {
			width = n
		}
	}
	return width
}
