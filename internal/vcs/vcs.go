// Package vcs bootstraps a git repository in a freshly scaffolded project.
//
// Bootstrapping is best effort. A missing git executable, an existing
// repository or an empty commit never fails the run; the cause is only
// logged at debug level.
package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/create-01x/create-01x-project/internal/branding"
	"github.com/create-01x/create-01x-project/internal/logging"
)

// Bootstrap runs git init, git add . and git commit in root. It never
// returns an error.
func Bootstrap(ctx context.Context, root string) {
	bootstrap(ctx, root, "git")
}

func bootstrap(ctx context.Context, root, gitBin string) {
	log := logging.FromContext(ctx).With("component", "vcs", "root", root)

	if err := initRepo(ctx, root, gitBin); err != nil {
		log.Debug("git bootstrap failed", "error", err)
		return
	}
	log.Debug("git bootstrap complete", "message", branding.CommitMessage())
}

func initRepo(ctx context.Context, root, gitBin string) error {
	git, err := exec.LookPath(gitBin)
	if err != nil {
		return fmt.Errorf("locating git: %w", err)
	}

	if err := run(ctx, root, git, "init"); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	if err := run(ctx, root, git, "add", "."); err != nil {
		return fmt.Errorf("git add: %w", err)
	}

	args := fallbackIdentity(ctx, root, git)
	args = append(args, "commit", "-m", branding.CommitMessage())
	if err := run(ctx, root, git, args...); err != nil {
		return fmt.Errorf("git commit: %w", err)
	}
	return nil
}

// fallbackIdentity returns -c overrides for whichever of user.name and
// user.email git has no value for. They apply to the one commit only.
func fallbackIdentity(ctx context.Context, root, git string) []string {
	name, email := branding.Committer()
	var args []string
	if configValue(ctx, root, git, "user.name") == "" {
		args = append(args, "-c", "user.name="+name)
	}
	if configValue(ctx, root, git, "user.email") == "" {
		args = append(args, "-c", "user.email="+email)
	}
	return args
}

func configValue(ctx context.Context, root, git, key string) string {
	cmd := command(ctx, root, git, "config", key)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return ""
	}
	return strings.TrimSpace(out.String())
}

func run(ctx context.Context, root, git string, args ...string) error {
	cmd := command(ctx, root, git, args...)
	cmd.Stdout = io.Discard
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && stderr.Len() > 0 {
			return fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return err
	}
	return nil
}

// command builds a git invocation that can never wait on a terminal.
func command(ctx context.Context, root, git string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, git, args...)
	cmd.Dir = root
	cmd.Stdin = nil
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	return cmd
}
