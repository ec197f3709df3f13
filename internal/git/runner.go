package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// Command describes one invocation of an external executable.
type Command struct {
	Name        string
	Arguments   []string
	Environment map[string]string // merged over the inherited environment
}

// Result is the outcome of a command that was started.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes commands. A non-zero exit is reported through Result;
// the error is reserved for commands that could not be started at all.
type Runner interface {
	Run(ctx context.Context, command Command) (Result, error)
}

// OSRunner runs commands with os/exec.
type OSRunner struct{}

func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

func (r *OSRunner) Run(ctx context.Context, command Command) (Result, error) {
	// #nosec G204 -- executable and arguments come from configuration and internal logic
	cmd := exec.CommandContext(ctx, command.Name, command.Arguments...)

	if len(command.Environment) > 0 {
		env := append([]string{}, os.Environ()...)
		for key, value := range command.Environment {
			env = append(env, key+"="+value)
		}
		cmd.Env = env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, err
		}
		return Result{
			ExitCode: exitErr.ExitCode(),
			Stdout:   lossyText(stdout.Bytes()),
			Stderr:   lossyText(stderr.Bytes()),
		}, nil
	}

	return Result{
		Stdout: lossyText(stdout.Bytes()),
		Stderr: lossyText(stderr.Bytes()),
	}, nil
}

// lossyText replaces invalid UTF-8 sequences with U+FFFD.
func lossyText(b []byte) string {
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
