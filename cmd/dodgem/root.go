package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	ver "github.com/dbr/dodgem/internal/version"
)

const longHelp = `dodgem bumps a project's semantic version from its git history.

It finds the most recent tagged ancestor of HEAD, reads the -MAJOR.MINOR.PATCH
suffix of that tag, computes the next version for the requested bump type, and
rewrites the version string inside the project's version file. The repository
itself is never modified; the rewritten file is left as an uncommitted change.

The repository must be on the expected branch and, unless --allow-dirty is
given, have no uncommitted changes.`

// NewRootCommand wires the CLI surface onto an App.
func NewRootCommand(app *App) *cobra.Command {
	cfg := app.Config
	var quiet bool

	cmd := &cobra.Command{
		Use:       fmt.Sprintf("dodgem [%s]", strings.Join(ver.Kinds, "|")),
		Short:     "Bump the project version from the most recent release tag",
		Long:      longHelp,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: ver.Kinds,
		Version: fmt.Sprintf("%s (%s) built on %s",
			cfg.VersionInfo.Version, cfg.VersionInfo.Commit, cfg.VersionInfo.Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Bump = args[0]
			}
			cfg.Verbose = !quiet

			if err := app.Initialize(); err != nil {
				return err
			}

			_, err := app.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&cfg.RepoPath, "path", "p", cfg.RepoPath,
		"repository root or any path inside it (default: current directory)")
	cmd.Flags().StringVar(&cfg.Branch, "branch", cfg.Branch,
		"branch the bump must run on")
	cmd.Flags().StringVar(&cfg.VersionFile, "file", cfg.VersionFile,
		"version file at the repository root to patch")
	cmd.Flags().BoolVar(&cfg.AllowDirty, "allow-dirty", cfg.AllowDirty,
		"proceed even if the working tree has uncommitted changes")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun,
		"compute the bump but do not modify any file")
	cmd.Flags().BoolVar(&quiet, "quiet", false,
		"suppress diagnostic output")

	cmd.SetOut(app.Stdout)
	cmd.SetErr(app.Stderr)

	return cmd
}
