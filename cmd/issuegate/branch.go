package main

import (
	"context"

	"github.com/rkarlsb/issuegate/internal/log"
	"github.com/rkarlsb/issuegate/internal/rules"
)

// runBranch applies the branch-phase checks. Success is silent so hook
// frameworks only see output when something is wrong.
func runBranch(ctx context.Context, cfg rules.Config, branch string) error {
	if err := rules.CheckBranch(cfg, branch); err != nil {
		return err
	}

	l := log.FromContext(ctx)
	if l.Verbose() {
		if cfg.Excluded(branch) {
			l.Printf("branch %q is excluded from the format rule\n", branch)
		} else {
			l.Printf("branch %q ok\n", branch)
		}
	}
	return nil
}
