package rules

import (
	"regexp"
	"strconv"
)

var (
	// issueRefPattern matches an issue reference anywhere in a commit
	// message: a '#' marker immediately followed by digits.
	issueRefPattern = regexp.MustCompile(`#(\d+)`)

	// branchIssuePattern matches the leading issue number of a branch
	// name: digits at the very start, immediately followed by a dash.
	branchIssuePattern = regexp.MustCompile(`^(\d+)-`)
)

// IssueRefs returns the issue numbers referenced in text, in order of
// first occurrence with duplicates removed. "#abc" is not a reference.
func IssueRefs(text string) []int {
	var refs []int
	seen := make(map[int]bool)
	for _, m := range issueRefPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			// Digit runs too long for an int aren't plausible issue numbers.
			continue
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		refs = append(refs, n)
	}
	return refs
}

// BranchIssue returns the issue number a branch is named after.
// ok is false when the name doesn't start with <digits>-.
func BranchIssue(branch string) (n int, ok bool) {
	m := branchIssuePattern.FindStringSubmatch(branch)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
