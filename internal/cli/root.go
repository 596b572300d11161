package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/create-01x/create-01x-project/internal/branding"
	"github.com/create-01x/create-01x-project/internal/runner"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  string
	buildDate    string
)

// vcsOverride replaces git bootstrapping in tests.
var vcsOverride runner.VCSFunc

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds a Claude Code multi-agent build system into the current
directory: an operating manual, a guide, a product seed, agent and
command definitions, and an optional first git commit.

Re-running is safe. Agent definitions and the manual are refreshed; the
product seed and .gitignore are kept if they already exist.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runScaffold,
	}
}

// Execute runs the root command with build info injected via ldflags.
// SIGINT cancels a pending prompt.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}
