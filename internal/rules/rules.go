package rules

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Config holds the validation settings for one invocation.
// It is built once at process start and immutable afterwards.
type Config struct {
	// ExcludeBranches are matched against the branch name (unanchored
	// search, so "^main$" excludes exactly main). A matching branch skips
	// the branch-format rule.
	ExcludeBranches []*regexp.Regexp

	// MultiIssueCommits permits a commit message to reference several
	// issues, as long as the branch's issue is among them.
	MultiIssueCommits bool

	// AutoPrepend and AutoAppend insert the branch's issue reference into
	// an accepted commit message. At most one may be set.
	AutoPrepend bool
	AutoAppend  bool
}

// Validate checks the Config invariants.
func (c Config) Validate() error {
	if c.AutoPrepend && c.AutoAppend {
		return reject(ConfigError, "auto-prepend and auto-append are mutually exclusive")
	}
	return nil
}

// Excluded reports whether branch matches any exclusion pattern.
func (c Config) Excluded(branch string) bool {
	for _, p := range c.ExcludeBranches {
		if p.MatchString(branch) {
			return true
		}
	}
	return false
}

// CheckBranch applies the branch-format rule: the name must start with an
// issue number followed by a dash, unless the branch is excluded.
func CheckBranch(cfg Config, branch string) error {
	if cfg.Excluded(branch) {
		return nil
	}
	if _, ok := BranchIssue(branch); !ok {
		return reject(InvalidBranchFormat,
			"branch %q must start with an issue number followed by a dash (e.g. 42-short-description)", branch)
	}
	return nil
}

// CheckMessage cross-validates the issue references in a commit message
// against the branch's issue number.
//
// A message with no references is always rejected. More than one reference
// is rejected unless multi-issue mode is on. An excluded branch accepts any
// referenced issue; otherwise the branch's issue must be referenced.
func CheckMessage(cfg Config, branch, msg string) error {
	refs := IssueRefs(msg)
	if len(refs) == 0 {
		return reject(MissingIssueNumber,
			"commit message does not reference an issue number; did you prefix it with '#'?")
	}
	if len(refs) > 1 && !cfg.MultiIssueCommits {
		return reject(MultipleIssueNumbers,
			"commit message references more than one issue (%s); use --multi-issue-commits to permit this",
			formatRefs(refs))
	}
	if cfg.Excluded(branch) {
		return nil
	}
	branchIssue, ok := BranchIssue(branch)
	if !ok || !slices.Contains(refs, branchIssue) {
		return reject(IssueNumberMismatch,
			"commit message references %s, but the branch is for issue #%s",
			formatRefs(refs), branchIssueLabel(branch))
	}
	return nil
}

// formatRefs renders issue numbers as "#1, #2" for diagnostics.
func formatRefs(refs []int) string {
	parts := make([]string, len(refs))
	for i, n := range refs {
		parts[i] = "#" + strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

func branchIssueLabel(branch string) string {
	if n, ok := BranchIssue(branch); ok {
		return strconv.Itoa(n)
	}
	return "?"
}
