package main

import (
	"errors"
	"testing"

	"github.com/rkarlsb/issuegate/internal/config"
	"github.com/rkarlsb/issuegate/internal/rules"
)

func changedSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	fileCfg := config.Config{Check: config.CheckConfig{
		ExcludeBranches:   []string{"^main$"},
		MultiIssueCommits: false,
		Auto:              config.AutoAppend,
	}}

	t.Run("unset flags keep file config", func(t *testing.T) {
		t.Parallel()
		got := mergeFlags(fileCfg, checkFlags{multiIssue: true}, changedSet())
		if got.Check.MultiIssueCommits {
			t.Error("unset flag should not override file config")
		}
		if got.Check.Auto != config.AutoAppend {
			t.Errorf("Auto = %q, want %q from file", got.Check.Auto, config.AutoAppend)
		}
	})

	t.Run("set flags override file config", func(t *testing.T) {
		t.Parallel()
		f := checkFlags{
			excludeBranches: []string{"^develop$"},
			multiIssue:      true,
			autoPrepend:     true,
		}
		got := mergeFlags(fileCfg, f, changedSet("exclude-branches", "multi-issue-commits", "auto-prepend"))
		if len(got.Check.ExcludeBranches) != 1 || got.Check.ExcludeBranches[0] != "^develop$" {
			t.Errorf("ExcludeBranches = %v, want flag value", got.Check.ExcludeBranches)
		}
		if !got.Check.MultiIssueCommits {
			t.Error("multi-issue flag should override file config")
		}
		if got.Check.Auto != config.AutoPrepend {
			t.Errorf("Auto = %q, want %q", got.Check.Auto, config.AutoPrepend)
		}
	})

	t.Run("explicit auto-prepend=false disables file auto mode", func(t *testing.T) {
		t.Parallel()
		got := mergeFlags(fileCfg, checkFlags{}, changedSet("auto-prepend"))
		if got.Check.Auto != config.AutoOff {
			t.Errorf("Auto = %q, want off", got.Check.Auto)
		}
	})
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"branch format", &rules.Error{Kind: rules.InvalidBranchFormat}, 1},
		{"missing issue", &rules.Error{Kind: rules.MissingIssueNumber}, 2},
		{"multiple issues", &rules.Error{Kind: rules.MultipleIssueNumbers}, 2},
		{"mismatch", &rules.Error{Kind: rules.IssueNumberMismatch}, 2},
		{"config", &rules.Error{Kind: rules.ConfigError}, 3},
		{"plain error", errors.New("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
