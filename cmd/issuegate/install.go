package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rkarlsb/issuegate/internal/git"
	"github.com/rkarlsb/issuegate/internal/log"
)

// hookMarker identifies hook scripts written by issuegate, so install,
// uninstall and doctor never touch scripts the user wrote themselves.
const hookMarker = "# managed by issuegate"

// managedHooks lists the git hooks issuegate installs and the subcommand
// each one runs. The branch check runs at pre-commit; the message check
// runs at commit-msg, where git passes the message file as $1.
var managedHooks = []struct {
	name string
	args string
}{
	{"pre-commit", "branch"},
	{"commit-msg", `commit-msg "$1"`},
}

// hookScript renders the shell script for one managed hook. Validation
// settings are not baked in: they come from .issuegate.toml so the
// scripts never need reinstalling when settings change.
func hookScript(args string) string {
	return fmt.Sprintf("#!/bin/sh\n%s\nexec issuegate %s\n", hookMarker, args)
}

// isManagedHook reports whether the file at path was written by issuegate.
func isManagedHook(path string) bool {
	data, err := os.ReadFile(path)
	return err == nil && strings.Contains(string(data), hookMarker)
}

// installHooks writes the managed hook scripts into .git/hooks. An
// existing hook that issuegate doesn't manage is only overwritten with
// force.
func installHooks(ctx context.Context, workDir string, force bool) error {
	gitDir, err := git.Dir(ctx, workDir)
	if err != nil {
		return err
	}
	hooksDir := filepath.Join(gitDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return fmt.Errorf("failed to create hooks directory: %w", err)
	}

	l := log.FromContext(ctx)
	for _, h := range managedHooks {
		path := filepath.Join(hooksDir, h.name)
		if _, err := os.Stat(path); err == nil && !isManagedHook(path) && !force {
			return fmt.Errorf("a %s hook already exists at %s; re-run with --force to overwrite it", h.name, path)
		}
		if err := os.WriteFile(path, []byte(hookScript(h.args)), 0755); err != nil {
			return fmt.Errorf("failed to write %s hook: %w", h.name, err)
		}
		l.Printf("installed %s hook\n", h.name)
	}
	return nil
}

// uninstallHooks removes the managed hook scripts. Hooks issuegate
// doesn't manage are left alone.
func uninstallHooks(ctx context.Context, workDir string) error {
	gitDir, err := git.Dir(ctx, workDir)
	if err != nil {
		return err
	}
	hooksDir := filepath.Join(gitDir, "hooks")

	l := log.FromContext(ctx)
	for _, h := range managedHooks {
		path := filepath.Join(hooksDir, h.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if !isManagedHook(path) {
			l.Printf("skipping %s hook: not managed by issuegate\n", h.name)
			continue
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s hook: %w", h.name, err)
		}
		l.Printf("removed %s hook\n", h.name)
	}
	return nil
}
