// Package git wraps the git CLI operations issuegate needs: locating the
// repository, reading the current branch, and finding the hooks directory.
//
// Detached HEAD (e.g. during a rebase) is reported as the branch name
// "HEAD", matching `git rev-parse --abbrev-ref HEAD`. Users who want
// checks skipped during rebases can exclude it with the pattern "^HEAD$".
package git
