package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rkarlsb/issuegate/internal/config"
	"github.com/rkarlsb/issuegate/internal/git"
	"github.com/rkarlsb/issuegate/internal/output"
	"github.com/rkarlsb/issuegate/internal/ui"
)

// runDoctor reports on everything the hooks need at commit time: git,
// a repository, a loadable configuration, and installed hook scripts.
func runDoctor(ctx context.Context, render *ui.Renderer, workDir string) error {
	out := output.FromContext(ctx)
	failed := 0

	// git on PATH
	if err := git.CheckGit(); err != nil {
		out.Println(render.Fail(err.Error()))
		return fmt.Errorf("1 check failed")
	}
	out.Println(render.OK("git is installed"))

	// inside a repository
	if !git.IsInsideRepo(ctx, workDir) {
		out.Println(render.Fail("not inside a git repository"))
		return fmt.Errorf("1 check failed")
	}
	out.Println(render.OK("inside a git repository"))

	// configuration loads and compiles
	repoRoot, err := git.TopLevel(ctx, workDir)
	if err != nil {
		repoRoot = workDir
	}
	cfg, err := config.Load(repoRoot)
	if err != nil {
		out.Println(render.Fail(fmt.Sprintf("configuration: %v", err)))
		failed++
	} else if _, err := cfg.Rules(); err != nil {
		out.Println(render.Fail(fmt.Sprintf("configuration: %v", err)))
		failed++
	} else {
		out.Println(render.OK("configuration is valid"))
	}

	// hook scripts present and managed
	gitDir, err := git.Dir(ctx, workDir)
	if err != nil {
		out.Println(render.Fail(err.Error()))
		failed++
	} else {
		for _, h := range managedHooks {
			path := filepath.Join(gitDir, "hooks", h.name)
			switch {
			case isManagedHook(path):
				out.Println(render.OK(h.name + " hook installed"))
			case fileExists(path):
				out.Println(render.Warn(h.name + " hook exists but is not managed by issuegate"))
			default:
				out.Println(render.Warn(h.name + " hook not installed (run 'issuegate install')"))
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
