// Package rules implements the checks linking branch names and commit
// messages to issue numbers.
//
// The convention: branches are named <issue>-<slug> (e.g. "2325-fix-login")
// and commit messages reference issues as #<digits>. The branch check
// enforces the naming format; the commit-message check enforces that the
// message references the branch's issue.
//
// Everything in this package is a pure function over strings and a Config
// value. File I/O and git access live in the callers so the rules stay
// unit-testable.
package rules
