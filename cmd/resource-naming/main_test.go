package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resource-naming/internal/cliapp"
)

func runInTempDir(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)

	var stdout, stderr bytes.Buffer
	err = run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"table", []string{"table", `App\Models\Category`}, "categories\n"},
		{"join table", []string{"join-table", "User", "Group"}, "group_user\n"},
		{"locale flag", []string{"--naming.locale=en-US", "table", "User"}, "users\n"},
		{"override flag", []string{"--naming.plural_overrides=person=persons", "table", "Person"}, "persons\n"},
		{"version", []string{"--version"}, "resource-naming dev (none)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runInTempDir(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestRun_InvalidConfiguration(t *testing.T) {
	stdout, stderr, err := runInTempDir(t, "--naming.locale=fr", "table", "User")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "naming.locale")
}

func TestRun_Usage(t *testing.T) {
	_, _, err := runInTempDir(t, "rename", "User")
	assert.ErrorIs(t, err, cliapp.ErrUsage)
}

func TestRun_ErrorUsesConfiguredLogFormat(t *testing.T) {
	_, stderr, err := runInTempDir(t, "--logging.format=json", "rename", "User")
	require.Error(t, err)
	assert.Contains(t, stderr, `"msg":"resource-naming error"`)
	assert.Contains(t, stderr, `unknown command`)
}

func TestRun_LoadErrorIsLogged(t *testing.T) {
	_, stderr, err := runInTempDir(t, "--config=missing.yaml", "table", "User")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.Contains(t, stderr, "resource-naming error")
}

func TestRun_Help(t *testing.T) {
	_, stderr, err := runInTempDir(t, "--help")
	assert.ErrorIs(t, err, pflag.ErrHelp)
	assert.Contains(t, stderr, "usage: resource-naming")
}
