package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/create-01x/create-01x-project/internal/catalog"
	"github.com/create-01x/create-01x-project/internal/config"
	"github.com/create-01x/create-01x-project/internal/content"
	"github.com/create-01x/create-01x-project/internal/logging"
	"github.com/create-01x/create-01x-project/internal/prompt"
	"github.com/create-01x/create-01x-project/internal/runner"
	"github.com/create-01x/create-01x-project/internal/ui"
	"github.com/spf13/cobra"
)

func runScaffold(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	config.Load()
	logger, closeLog, err := logging.New(logging.Options{
		Level:  config.LogLevel(),
		File:   config.LogFile(),
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	defer closeLog()
	logger.Debug("starting", "version", buildVersion, "commit", buildCommit, "date", buildDate)

	// The catalog is checked before any question so a broken build fails
	// without touching the directory.
	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}
	if err := cat.Verify(); err != nil {
		return fmt.Errorf("verifying templates: %w", err)
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	console := ui.New(cmd.OutOrStdout(), config.Color())
	console.Banner(buildVersion, cat.Version())

	p := &prompt.Prompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}

	name, err := p.ProjectName(ctx, filepath.Base(root))
	if err != nil {
		return cancelled(console, err)
	}
	if err := console.Preview(name, cat); err != nil {
		return err
	}

	initGit, err := p.Confirm(ctx, "Initialise a git repo?", true)
	if err != nil {
		return cancelled(console, err)
	}

	logger.Debug("input collected", "project", name, "git", initGit, "root", root)

	result, err := runner.Run(ctx, runner.Request{ProjectName: name, InitGit: initGit}, runner.Options{
		Root:     root,
		Catalog:  cat,
		Reporter: console.Reporter(),
		VCS:      vcsOverride,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	console.Done(len(result.Written), len(result.Skipped))
	console.NextSteps(seedPath(cat))
	return nil
}

func cancelled(console *ui.Console, err error) error {
	if errors.Is(err, prompt.ErrCancelled) {
		console.Cancelled()
	}
	return err
}

func seedPath(cat *catalog.Catalog) string {
	for _, d := range cat.Documents() {
		if content.Kind(d.Kind) == content.KindSeedInput {
			return d.Path
		}
	}
	return "the product seed"
}
