package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Johannes-Berggren/branchsweep/internal/models"
)

// BranchService is the git backend the model drives.
type BranchService interface {
	ListBranches(ctx context.Context) ([]models.Branch, int, error)
	DeleteBranch(ctx context.Context, name string, mode models.DeleteMode) (string, error)
	Executable() string
}

type errMsg struct {
	err error
}

type branchesLoadedMsg struct {
	branches []models.Branch
}

type branchDeletedMsg struct {
	name   string
	status string
}

type Model struct {
	ctx      context.Context
	service  BranchService
	logger   *zap.Logger
	keys     KeyMap
	help     help.Model
	list     *BranchView
	err      error
	busy     bool // a git command is running
	quitting bool
}

// NewModel builds the root model around an already listed set of branches.
func NewModel(ctx context.Context, service BranchService, branches []models.Branch, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		ctx:     ctx,
		service: service,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		list:    NewBranchView(branches),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Busy reports whether a delete or refresh is still running.
func (m Model) Busy() bool {
	return m.busy
}

func (m Model) Cursor() int {
	return m.list.Cursor()
}

func (m Model) Branches() []models.Branch {
	return m.list.Branches()
}

func (m Model) loadBranches() tea.Cmd {
	return func() tea.Msg {
		branches, _, err := m.service.ListBranches(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return branchesLoadedMsg{branches}
	}
}

func (m Model) deleteBranch(name string, mode models.DeleteMode) tea.Cmd {
	return func() tea.Msg {
		status, err := m.service.DeleteBranch(m.ctx, name, mode)
		if err != nil {
			return errMsg{err}
		}
		return branchDeletedMsg{name: name, status: status}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keys.Action(msg)
		if action != ActionNone {
			m.logger.Debug("key pressed", zap.String("key", msg.String()), zap.Stringer("action", action))
		}

		switch action {
		case ActionQuit:
			m.quitting = true
			return m, tea.Quit

		case ActionMoveDown:
			m.list.MoveDown()

		case ActionMoveUp:
			m.list.MoveUp()

		case ActionDelete, ActionForceDelete:
			selected := m.list.SelectedBranch()
			if selected == nil || m.busy {
				return m, nil
			}
			mode := models.DeleteSafe
			if action == ActionForceDelete {
				mode = models.DeleteForce
			}
			m.busy = true
			return m, m.deleteBranch(selected.Name, mode)

		case ActionRefresh:
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, m.loadBranches()
		}

	case branchDeletedMsg:
		m.busy = false
		m.list.SetStatus(msg.name, msg.status)

	case branchesLoadedMsg:
		m.busy = false
		m.list.SetBranches(msg.branches)

	case errMsg:
		m.busy = false
		m.logger.Error("stopping", zap.Error(msg.err))
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.list.SetWidth(msg.Width)
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	branchName := ""
	if selected := m.list.SelectedBranch(); selected != nil {
		branchName = selected.Name
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.list.View(),
		renderCommands(m.service.Executable(), m.list.NameWidth(), branchName),
		m.help.View(m.keys),
	)
}
