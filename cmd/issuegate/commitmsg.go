package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/rkarlsb/issuegate/internal/log"
	"github.com/rkarlsb/issuegate/internal/rules"
)

// runCommitMsg applies the commit-message-phase checks to the message in
// path, then performs the auto-insert mutation if configured. The file is
// written back at most once, and only after the checks pass.
func runCommitMsg(ctx context.Context, cfg rules.Config, branch, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read commit message file: %w", err)
	}
	msg := string(data)

	if err := rules.CheckMessage(cfg, branch, msg); err != nil {
		return err
	}

	updated, changed := rules.Insert(cfg, branch, msg)
	if !changed {
		return nil
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(updated), mode); err != nil {
		return fmt.Errorf("failed to write commit message file: %w", err)
	}

	l := log.FromContext(ctx)
	if l.Verbose() {
		l.Printf("inserted the branch's issue reference into %s\n", path)
	}
	return nil
}
