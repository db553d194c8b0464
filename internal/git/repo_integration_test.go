//go:build integration

package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// setupTestRepo creates a git repo with an initial commit in dir/name and
// returns its absolute path (with symlinks resolved, for macOS /var).
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", dir, err)
	}

	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	cmds := [][]string{
		{"git", "init", "-b", "main"},
		{"git", "config", "user.email", "test@test.com"},
		{"git", "config", "user.name", "Test User"},
		{"git", "config", "commit.gpgsign", "false"},
		{"git", "commit", "--allow-empty", "-m", "initial commit"},
	}
	for _, args := range cmds {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = repoPath
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("failed to run %v: %v\n%s", args, err, out)
		}
	}

	return repoPath
}

func TestCurrentBranch(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t, t.TempDir(), "repo")

	t.Run("named branch", func(t *testing.T) {
		cmd := exec.Command("git", "checkout", "-b", "42-add-thing")
		cmd.Dir = repo
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("checkout failed: %v\n%s", err, out)
		}

		branch, err := CurrentBranch(ctx, repo)
		if err != nil {
			t.Fatalf("CurrentBranch = %v, want nil", err)
		}
		if branch != "42-add-thing" {
			t.Errorf("CurrentBranch = %q, want %q", branch, "42-add-thing")
		}
	})

	t.Run("detached HEAD", func(t *testing.T) {
		cmd := exec.Command("git", "checkout", "--detach")
		cmd.Dir = repo
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("detach failed: %v\n%s", err, out)
		}

		branch, err := CurrentBranch(ctx, repo)
		if err != nil {
			t.Fatalf("CurrentBranch = %v, want nil", err)
		}
		if branch != "HEAD" {
			t.Errorf("CurrentBranch = %q, want %q", branch, "HEAD")
		}
	})
}

func TestDirAndTopLevel(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t, t.TempDir(), "repo")

	gitDir, err := Dir(ctx, repo)
	if err != nil {
		t.Fatalf("Dir = %v, want nil", err)
	}
	if gitDir != filepath.Join(repo, ".git") {
		t.Errorf("Dir = %q, want %q", gitDir, filepath.Join(repo, ".git"))
	}

	top, err := TopLevel(ctx, repo)
	if err != nil {
		t.Fatalf("TopLevel = %v, want nil", err)
	}
	if top != repo {
		t.Errorf("TopLevel = %q, want %q", top, repo)
	}
}
