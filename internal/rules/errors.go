package rules

import (
	"errors"
	"fmt"
)

// Kind identifies why a check rejected its input.
type Kind string

const (
	// InvalidBranchFormat means the branch name does not start with an
	// issue number followed by a dash.
	InvalidBranchFormat Kind = "invalid-branch-format"
	// MissingIssueNumber means the commit message references no issue.
	MissingIssueNumber Kind = "missing-issue-number"
	// MultipleIssueNumbers means the commit message references more than
	// one issue without multi-issue mode enabled.
	MultipleIssueNumbers Kind = "multiple-issue-numbers"
	// IssueNumberMismatch means the referenced issue(s) don't include the
	// branch's issue.
	IssueNumberMismatch Kind = "issue-number-mismatch"
	// ConfigError means the validation settings themselves are invalid.
	ConfigError Kind = "config-error"
)

// Error is a check rejection carrying its kind for exit-code mapping.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

// reject builds a rejection error.
func reject(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// KindOf returns the rejection kind of err, or "" if err is not a rejection.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}
