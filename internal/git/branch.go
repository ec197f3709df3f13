package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Johannes-Berggren/branchsweep/internal/models"
)

// DefaultExecutable is used when no git executable is configured.
const DefaultExecutable = "git"

// isolatedEnvironment keeps user and system git configuration from changing
// the branch listing format.
var isolatedEnvironment = map[string]string{
	"HOME":                "/no-config",
	"XDG_CONFIG_HOME":     "/no-config",
	"GIT_CONFIG_NOSYSTEM": "1",
}

var ErrRunnerNotConfigured = errors.New("git: command runner not configured")

type Option func(*Client)

// WithExecutable overrides the git executable.
func WithExecutable(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.executable = name
		}
	}
}

// WithIsolation toggles running the branch listing without user config.
func WithIsolation(enabled bool) Option {
	return func(c *Client) {
		c.isolate = enabled
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client lists and deletes local branches through an external git executable.
type Client struct {
	runner     Runner
	executable string
	isolate    bool
	logger     *zap.Logger
}

func NewClient(runner Runner, opts ...Option) (*Client, error) {
	if runner == nil {
		return nil, ErrRunnerNotConfigured
	}

	c := &Client{
		runner:     runner,
		executable: DefaultExecutable,
		isolate:    true,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Executable() string {
	return c.executable
}

func (c *Client) run(ctx context.Context, env map[string]string, args ...string) (Result, error) {
	command := Command{Name: c.executable, Arguments: args, Environment: env}
	c.logger.Debug("running command",
		zap.String("executable", command.Name),
		zap.Strings("args", command.Arguments))

	result, err := c.runner.Run(ctx, command)
	if err != nil {
		c.logger.Error("command could not start",
			zap.String("executable", command.Name),
			zap.Strings("args", command.Arguments),
			zap.Error(err))
		return Result{}, err
	}

	c.logger.Debug("command finished",
		zap.String("executable", command.Name),
		zap.Strings("args", command.Arguments),
		zap.Int("exit_code", result.ExitCode))
	return result, nil
}

// ListBranches returns the local branches in the order git prints them and
// the width of the longest name.
func (c *Client) ListBranches(ctx context.Context) ([]models.Branch, int, error) {
	var env map[string]string
	if c.isolate {
		env = isolatedEnvironment
	}

	result, err := c.run(ctx, env, "branch", "--list", "--color=never")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list branches: %w", err)
	}
	if !result.Success() {
		msg := strings.TrimSpace(result.Stderr)
		if c.isolate {
			// Isolation hides global settings such as safe.directory.
			msg += " (listing ran without user git config; retry with --no-isolate)"
		}
		return nil, 0, fmt.Errorf("failed to list branches: %s", msg)
	}

	branches := parseBranches(result.Stdout)
	return branches, models.MaxNameWidth(branches), nil
}

// parseBranches reads "git branch --list" output. Each line is a one
// character marker, a space, then the branch name.
func parseBranches(output string) []models.Branch {
	branches := []models.Branch{}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		branch := models.Branch{}
		if strings.HasPrefix(line, "*") {
			branch.Status = models.CurrentBranchStatus
		}
		if len(line) > 2 {
			branch.Name = line[2:]
		}

		branches = append(branches, branch)
	}

	return branches
}

// DeleteBranch runs "git branch -d|-D name" and returns the message to show
// for the branch: stdout when git succeeded, stderr otherwise. A refused
// delete is not an error; only a failure to start git is.
func (c *Client) DeleteBranch(ctx context.Context, name string, mode models.DeleteMode) (string, error) {
	result, err := c.run(ctx, nil, "branch", mode.Flag(), name)
	if err != nil {
		return "", fmt.Errorf("failed to delete branch %s: %w", name, err)
	}

	if result.Success() {
		c.logger.Info("branch deleted", zap.String("branch", name), zap.Stringer("mode", mode))
		return result.Stdout, nil
	}

	c.logger.Info("branch delete refused",
		zap.String("branch", name),
		zap.Stringer("mode", mode),
		zap.Int("exit_code", result.ExitCode))
	return result.Stderr, nil
}

// IsRepository reports whether the working directory is inside a git work tree.
func (c *Client) IsRepository(ctx context.Context) (bool, error) {
	result, err := c.run(ctx, nil, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false, fmt.Errorf("failed to check repository: %w", err)
	}
	return result.Success() && strings.TrimSpace(result.Stdout) == "true", nil
}
