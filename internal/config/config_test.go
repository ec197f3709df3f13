package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T, args ...string) (*pflag.FlagSet, []FlagBinding) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("git", "git", "")
	fs.Bool("no-isolate", false, "")
	fs.String("log-level", "debug", "")
	require.NoError(t, fs.Parse(args))

	return fs, []FlagBinding{
		{Key: KeyGit, Flag: "git"},
		{Key: KeyIsolate, Flag: "no-isolate", Invert: true},
		{Key: KeyLogLevel, Flag: "log-level"},
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "branchsweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "git: /usr/local/bin/git\nisolate: false\nalt_screen: false\ndebug_log: /tmp/bs.log\nlog_level: INFO\n")

	cfg, err := Load(path, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Git:      "/usr/local/bin/git",
		DebugLog: "/tmp/bs.log",
		LogLevel: "info",
	}, cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil, nil)
	assert.Error(t, err)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "git: /from/file\n")
	t.Setenv("BRANCHSWEEP_GIT", "/from/env")
	t.Setenv("BRANCHSWEEP_ALT_SCREEN", "false")

	cfg, err := Load(path, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Git)
	assert.False(t, cfg.AltScreen)
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("BRANCHSWEEP_GIT", "/from/env")
	fs, bindings := testFlags(t, "--git", "/from/flag", "--no-isolate")

	cfg, err := Load("", fs, bindings)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.Git)
	assert.False(t, cfg.Isolate)
}

func TestLoadUnchangedFlagsKeepLowerSources(t *testing.T) {
	t.Setenv("BRANCHSWEEP_GIT", "/from/env")
	fs, bindings := testFlags(t)

	cfg, err := Load("", fs, bindings)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Git)
	assert.True(t, cfg.Isolate)
}

func TestLoadUnknownFlagBinding(t *testing.T) {
	fs, _ := testFlags(t)
	_, err := Load("", fs, []FlagBinding{{Key: KeyGit, Flag: "nope"}})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.Git = "  "
	assert.ErrorIs(t, cfg.Validate(), ErrEmptyExecutable)

	cfg = Default()
	cfg.LogLevel = "verbose"
	assert.ErrorIs(t, cfg.Validate(), ErrUnsupportedLogLevel)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	fs, bindings := testFlags(t, "--log-level", "loud")
	_, err := Load("", fs, bindings)
	assert.ErrorIs(t, err, ErrUnsupportedLogLevel)
}
