package rules

import (
	"strconv"
	"strings"
)

// Insert adds the branch's issue reference to an already-accepted commit
// message. Prepend mode inserts "#<n> " at the start; append mode inserts
// " #<n>" at the end of the last non-empty line, before any trailing
// newlines. Returns the updated message and whether it changed.
//
// Insert is idempotent: when the reference is already at the targeted
// position (or there is nothing to insert) the message is returned as-is.
func Insert(cfg Config, branch, msg string) (string, bool) {
	if !cfg.AutoPrepend && !cfg.AutoAppend {
		return msg, false
	}
	n, ok := BranchIssue(branch)
	if !ok {
		return msg, false
	}
	ref := "#" + strconv.Itoa(n)

	if cfg.AutoPrepend {
		if msg == ref || strings.HasPrefix(msg, ref+" ") || strings.HasPrefix(msg, ref+"\n") {
			return msg, false
		}
		return ref + " " + msg, true
	}

	body := strings.TrimRight(msg, "\n")
	if body == ref || strings.HasSuffix(body, " "+ref) {
		return msg, false
	}
	trailing := msg[len(body):]
	return body + " " + ref + trailing, true
}
