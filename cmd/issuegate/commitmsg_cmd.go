package main

import (
	"github.com/spf13/cobra"

	"github.com/rkarlsb/issuegate/internal/git"
)

func newCommitMsgCmd() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:     "commit-msg <file>",
		Short:   "Check that the commit message references the branch's issue",
		GroupID: GroupCheck,
		Args:    cobra.ExactArgs(1),
		Long: `Check the proposed commit message in <file> against the current
branch. The message must reference the branch's issue number as
#<digits>; with --multi-issue-commits it may reference additional
issues. Git passes the file path as the first hook argument.

With --auto-prepend or --auto-append, the branch's issue reference is
inserted into the message (and written back to <file>) after the
checks pass, unless it is already in place.`,
		Example: `  issuegate commit-msg .git/COMMIT_EDITMSG
  issuegate commit-msg --multi-issue-commits "$1"
  issuegate commit-msg --auto-prepend "$1"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := resolveRules(ctx, cmd, flags)
			if err != nil {
				return err
			}

			branch, err := git.CurrentBranch(ctx, workDir)
			if err != nil {
				return err
			}

			return runCommitMsg(ctx, cfg, branch, args[0])
		},
	}

	addCheckFlags(cmd, &flags, true)

	return cmd
}
