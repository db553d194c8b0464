package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// CurrentBranch returns the name of the branch checked out at path.
// Returns "HEAD" when the repository is in detached HEAD state.
func CurrentBranch(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %v", err)
	}
	branch := strings.TrimSpace(string(output))
	if branch == "" {
		return "HEAD", nil
	}
	return branch, nil
}

// Dir returns the absolute path of the .git directory for the repository
// containing path.
func Dir(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "rev-parse", "--git-dir")
	if err != nil {
		return "", fmt.Errorf("failed to locate .git directory: %v", err)
	}
	dir := strings.TrimSpace(string(output))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(path, dir)
	}
	return dir, nil
}

// TopLevel returns the root of the work tree containing path.
func TopLevel(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to locate repository root: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}
