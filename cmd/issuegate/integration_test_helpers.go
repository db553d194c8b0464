//go:build integration

package main

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rkarlsb/issuegate/internal/output"
	"github.com/rkarlsb/issuegate/internal/ui"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// gitRun runs a git command in dir, failing the test on error.
func gitRun(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// setupTestRepo creates a git repo with an initial commit in dir/name on
// the given branch. Returns the absolute repo path with symlinks resolved.
func setupTestRepo(t *testing.T, dir, name, branch string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	gitRun(t, repoPath, "init", "-b", branch)
	gitRun(t, repoPath, "config", "user.email", "test@test.com")
	gitRun(t, repoPath, "config", "user.name", "Test User")
	gitRun(t, repoPath, "config", "commit.gpgsign", "false")
	gitRun(t, repoPath, "commit", "--allow-empty", "-m", "initial commit")

	return repoPath
}

// inRepo points the command package at repoPath for the duration of the
// test and isolates HOME so no real config leaks in.
func inRepo(t *testing.T, repoPath string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	oldWorkDir := workDir
	workDir = repoPath
	t.Cleanup(func() { workDir = oldWorkDir })
}

// withTestPrinter attaches a printer writing to w.
func withTestPrinter(ctx context.Context, w io.Writer) context.Context {
	return output.WithPrinter(ctx, w)
}

// plainRenderer returns an unstyled renderer for asserting on output text.
func plainRenderer() *ui.Renderer {
	return ui.NewRenderer(false)
}
