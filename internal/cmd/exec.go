// Package cmd provides helpers for executing external commands.
//
// issuegate shells out to the git CLI rather than linking a git library:
// hooks always run where git is already present, and shelling out keeps
// behavior identical to what the user sees on the command line. These
// helpers capture stderr into the returned error and trace command lines
// through the context logger in verbose mode.
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rkarlsb/issuegate/internal/log"
)

// Run executes a command and returns stderr in the error message if it fails.
func Run(cmd *exec.Cmd) error {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return fmt.Errorf("%s", errMsg)
		}
		return err
	}
	return nil
}

// Output executes a command and returns stdout, with stderr in error if it fails.
func Output(cmd *exec.Cmd) ([]byte, error) {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return nil, fmt.Errorf("%s", errMsg)
		}
		return nil, err
	}
	return output, nil
}

// RunContext executes a command in dir with cancellation and verbose logging.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	err := Run(c)
	done(time.Since(start))
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// OutputContext executes a command in dir and returns stdout, with
// cancellation and verbose logging.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	out, err := Output(c)
	done(time.Since(start))
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return out, err
}
