package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkarlsb/issuegate/internal/git"
)

func newInstallCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "install",
		Short:   "Install the git hooks in the current repository",
		GroupID: GroupSetup,
		Args:    cobra.NoArgs,
		Long: `Write thin pre-commit and commit-msg hook scripts into .git/hooks
that run issuegate. Validation settings belong in .issuegate.toml at
the repository root, so installed hooks pick up setting changes
without reinstalling.`,
		Example: `  issuegate install
  issuegate install --force   # replace hooks issuegate doesn't manage`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !git.IsInsideRepo(ctx, workDir) {
				return fmt.Errorf("not inside a git repository")
			}
			return installHooks(ctx, workDir, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing hooks not managed by issuegate")

	return cmd
}

func newUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "uninstall",
		Short:   "Remove the git hooks from the current repository",
		GroupID: GroupSetup,
		Args:    cobra.NoArgs,
		Long: `Remove the pre-commit and commit-msg hook scripts that issuegate
installed. Hook scripts issuegate doesn't manage are left alone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !git.IsInsideRepo(ctx, workDir) {
				return fmt.Errorf("not inside a git repository")
			}
			return uninstallHooks(ctx, workDir)
		},
	}

	return cmd
}
