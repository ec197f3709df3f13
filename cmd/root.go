package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Johannes-Berggren/branchsweep/internal/config"
	"github.com/Johannes-Berggren/branchsweep/internal/git"
	"github.com/Johannes-Berggren/branchsweep/internal/logging"
	"github.com/Johannes-Berggren/branchsweep/internal/ui"
)

var version = "dev"

var (
	ErrNotRepository = errors.New("not a git repository")
	ErrNotTerminal   = errors.New("branchsweep needs an interactive terminal")
)

const (
	flagConfig      = "config"
	flagGit         = "git"
	flagNoIsolate   = "no-isolate"
	flagNoAltScreen = "no-alt-screen"
	flagDebugLog    = "debug-log"
	flagLogLevel    = "log-level"
)

var flagBindings = []config.FlagBinding{
	{Key: config.KeyGit, Flag: flagGit},
	{Key: config.KeyIsolate, Flag: flagNoIsolate, Invert: true},
	{Key: config.KeyAltScreen, Flag: flagNoAltScreen, Invert: true},
	{Key: config.KeyDebugLog, Flag: flagDebugLog},
	{Key: config.KeyLogLevel, Flag: flagLogLevel},
}

// Dependencies are the process-level collaborators of the root command.
type Dependencies struct {
	Runner     git.Runner
	IsTerminal func() bool
	RunProgram func(model tea.Model, opts ...tea.ProgramOption) (tea.Model, error)
}

func DefaultDependencies() Dependencies {
	return Dependencies{
		Runner: git.NewOSRunner(),
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		RunProgram: func(model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
			return tea.NewProgram(model, opts...).Run()
		},
	}
}

func NewRootCommand(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "branchsweep",
		Short:         "Interactively list and delete local git branches",
		Long:          `branchsweep lists the local branches of the current repository and deletes the selected one with git branch -d or -D.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, deps)
		},
	}

	defaults := config.Default()
	flags := cmd.Flags()
	flags.String(flagConfig, "", "path to a YAML configuration file")
	flags.String(flagGit, defaults.Git, "git executable to run")
	flags.Bool(flagNoIsolate, false, "list branches with the user's git configuration")
	flags.Bool(flagNoAltScreen, false, "draw in the main terminal screen")
	flags.String(flagDebugLog, defaults.DebugLog, "append JSON debug logs to this file")
	flags.String(flagLogLevel, defaults.LogLevel, "debug log level (debug, info, warn, error)")

	return cmd
}

func Execute(ctx context.Context) error {
	return NewRootCommand(DefaultDependencies()).ExecuteContext(ctx)
}

func run(cmd *cobra.Command, deps Dependencies) error {
	ctx := cmd.Context()

	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath, cmd.Flags(), flagBindings)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.DebugLog, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if !deps.IsTerminal() {
		return ErrNotTerminal
	}

	client, err := git.NewClient(deps.Runner,
		git.WithExecutable(cfg.Git),
		git.WithIsolation(cfg.Isolate),
		git.WithLogger(logger))
	if err != nil {
		return err
	}

	isRepo, err := client.IsRepository(ctx)
	if err != nil {
		return err
	}
	if !isRepo {
		return ErrNotRepository
	}

	branches, width, err := client.ListBranches(ctx)
	if err != nil {
		return err
	}
	logger.Info("starting", zap.Int("branches", len(branches)), zap.Int("name_width", width))

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	final, err := deps.RunProgram(ui.NewModel(ctx, client, branches, logger), opts...)
	if err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	if m, ok := final.(ui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
