package vcs

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/create-01x/create-01x-project/internal/branding"
	"github.com/create-01x/create-01x-project/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateGit points git at an empty global config so the host's identity
// does not leak into the tests.
func isolateGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(home, ".gitconfig"))
	for _, k := range []string{"GIT_AUTHOR_NAME", "GIT_AUTHOR_EMAIL", "GIT_COMMITTER_NAME", "GIT_COMMITTER_EMAIL", "EMAIL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err, "git %v", args)
	return strings.TrimSpace(string(out))
}

func scaffoldDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CLAUDE.md"), []byte("# demo\n"), 0644))
	return dir
}

func TestBootstrap_CommitsWithFallbackIdentity(t *testing.T) {
	isolateGit(t)
	dir := scaffoldDir(t)

	Bootstrap(context.Background(), dir)

	assert.Equal(t, branding.CommitMessage(), gitOutput(t, dir, "log", "-1", "--format=%s"))
	_, email := branding.Committer()
	assert.Equal(t, email, gitOutput(t, dir, "log", "-1", "--format=%ae"))
	assert.Equal(t, "CLAUDE.md", gitOutput(t, dir, "ls-files"))

	// The fallback identity is not persisted.
	cmd := exec.Command("git", "config", "--local", "user.email")
	cmd.Dir = dir
	assert.Error(t, cmd.Run())
}

func TestBootstrap_UsesConfiguredIdentity(t *testing.T) {
	isolateGit(t)
	gitconfig := "[user]\n\tname = Dana Operator\n\temail = dana@example.com\n"
	require.NoError(t, os.WriteFile(os.Getenv("GIT_CONFIG_GLOBAL"), []byte(gitconfig), 0644))
	dir := scaffoldDir(t)

	Bootstrap(context.Background(), dir)

	assert.Equal(t, "dana@example.com", gitOutput(t, dir, "log", "-1", "--format=%ae"))
}

func TestBootstrap_SecondRunIsSwallowed(t *testing.T) {
	isolateGit(t)
	dir := scaffoldDir(t)

	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(),
		slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Bootstrap(ctx, dir)
	Bootstrap(ctx, dir)

	assert.Equal(t, "1", gitOutput(t, dir, "rev-list", "--count", "HEAD"))
	assert.Contains(t, buf.String(), "git bootstrap failed")
}

func TestBootstrap_MissingGit(t *testing.T) {
	dir := scaffoldDir(t)
	t.Setenv("PATH", "")

	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(),
		slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Bootstrap(ctx, dir)

	_, err := os.Stat(filepath.Join(dir, ".git"))
	assert.True(t, os.IsNotExist(err))
	assert.Contains(t, buf.String(), "locating git")
}

func TestBootstrap_QuietAtDefaultLevel(t *testing.T) {
	dir := scaffoldDir(t)

	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(),
		slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	bootstrap(ctx, dir, "git-binary-that-does-not-exist")

	assert.Empty(t, buf.String())
}
