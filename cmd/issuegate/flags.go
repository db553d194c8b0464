package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rkarlsb/issuegate/internal/config"
	"github.com/rkarlsb/issuegate/internal/git"
	"github.com/rkarlsb/issuegate/internal/rules"
)

// checkFlags carries the validation flags shared by the check commands.
type checkFlags struct {
	excludeBranches []string
	multiIssue      bool
	autoPrepend     bool
	autoAppend      bool
}

// addCheckFlags registers the shared validation flags on cmd. The auto
// flags only make sense for the commit-msg phase.
func addCheckFlags(cmd *cobra.Command, f *checkFlags, withAuto bool) {
	cmd.Flags().StringArrayVarP(&f.excludeBranches, "exclude-branches", "e", nil,
		"Regex excluding branches from the branch-format rule (repeatable)")
	cmd.Flags().BoolVar(&f.multiIssue, "multi-issue-commits", false,
		"Permit referencing more than one issue per commit")
	if withAuto {
		cmd.Flags().BoolVar(&f.autoPrepend, "auto-prepend", false,
			"Prepend the branch's issue number to the commit message")
		cmd.Flags().BoolVar(&f.autoAppend, "auto-append", false,
			"Append the branch's issue number to the commit message")
		cmd.MarkFlagsMutuallyExclusive("auto-prepend", "auto-append")
	}
}

// mergeFlags applies command-line flags over file configuration. changed
// reports whether a flag was set explicitly (cmd.Flags().Changed).
func mergeFlags(cfg config.Config, f checkFlags, changed func(string) bool) config.Config {
	if changed("exclude-branches") {
		cfg.Check.ExcludeBranches = f.excludeBranches
	}
	if changed("multi-issue-commits") {
		cfg.Check.MultiIssueCommits = f.multiIssue
	}
	if changed("auto-prepend") {
		cfg.Check.Auto = config.AutoOff
		if f.autoPrepend {
			cfg.Check.Auto = config.AutoPrepend
		}
	}
	if changed("auto-append") {
		cfg.Check.Auto = config.AutoOff
		if f.autoAppend {
			cfg.Check.Auto = config.AutoAppend
		}
	}
	return cfg
}

// resolveRules builds the immutable rule configuration for one invocation:
// repo-local/global config file merged under the command-line flags.
func resolveRules(ctx context.Context, cmd *cobra.Command, f checkFlags) (rules.Config, error) {
	repoRoot := ""
	if git.IsInsideRepo(ctx, workDir) {
		if top, err := git.TopLevel(ctx, workDir); err == nil {
			repoRoot = top
		}
	}
	cfg, err := config.Load(repoRoot)
	if err != nil {
		return rules.Config{}, &rules.Error{Kind: rules.ConfigError, Detail: err.Error()}
	}
	cfg = mergeFlags(cfg, f, cmd.Flags().Changed)
	return cfg.Rules()
}
