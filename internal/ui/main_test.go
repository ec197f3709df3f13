package ui

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	// Plain text output so views can be compared as strings.
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}
