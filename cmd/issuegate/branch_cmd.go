package main

import (
	"github.com/spf13/cobra"

	"github.com/rkarlsb/issuegate/internal/git"
)

func newBranchCmd() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:     "branch [name]",
		Short:   "Check that the branch name starts with an issue number",
		GroupID: GroupCheck,
		Args:    cobra.MaximumNArgs(1),
		Long: `Check that the branch name starts with an issue number followed by
a dash (e.g. 2325-fix-login). Branches matching an exclusion pattern
skip this check.

Uses the currently checked-out branch when no name is given. This is
the pre-commit phase of the hook.`,
		Example: `  issuegate branch                          # check the current branch
  issuegate branch 42-add-retries           # check a specific name
  issuegate branch -e '^main$' -e '^HEAD$'  # exclude trunk and detached HEAD`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := resolveRules(ctx, cmd, flags)
			if err != nil {
				return err
			}

			branch := ""
			if len(args) == 1 {
				branch = args[0]
			} else {
				branch, err = git.CurrentBranch(ctx, workDir)
				if err != nil {
					return err
				}
			}

			return runBranch(ctx, cfg, branch)
		},
	}

	addCheckFlags(cmd, &flags, false)

	return cmd
}
