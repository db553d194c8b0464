// Package config loads issuegate settings from TOML files.
//
// Settings are looked up in order: repo-local .issuegate.toml at the
// repository root, then ~/.config/issuegate/config.toml. The first file
// found wins; CLI flags override individual fields on top of that.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/rkarlsb/issuegate/internal/rules"
)

// RepoFileName is the name of the repo-local config file.
const RepoFileName = ".issuegate.toml"

// Auto-insert modes accepted in [check] auto.
const (
	AutoOff     = ""
	AutoPrepend = "prepend"
	AutoAppend  = "append"
)

// CheckConfig holds the validation settings.
type CheckConfig struct {
	ExcludeBranches   []string `toml:"exclude_branches"`
	MultiIssueCommits bool     `toml:"multi_issue_commits"`
	Auto              string   `toml:"auto"`
}

// Config holds the issuegate configuration.
type Config struct {
	Check CheckConfig `toml:"check"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{}
}

// globalPath returns the path to the global config file.
func globalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "issuegate", "config.toml"), nil
}

// Load reads configuration for a repository rooted at repoRoot (may be
// empty when outside a repo). Missing files are not an error; a file that
// exists but doesn't parse or validate is.
func Load(repoRoot string) (Config, error) {
	if repoRoot != "" {
		cfg, found, err := loadFile(filepath.Join(repoRoot, RepoFileName))
		if err != nil || found {
			return cfg, err
		}
	}
	path, err := globalPath()
	if err != nil {
		return Default(), nil
	}
	cfg, _, err := loadFile(path)
	return cfg, err
}

// loadFile reads and validates one config file. found is false when the
// file doesn't exist.
func loadFile(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), false, nil
		}
		return Default(), false, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), true, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Default(), true, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, true, nil
}

// validate fails fast on settings that can never work, so a broken config
// is reported at load time rather than mid-check.
func (c Config) validate() error {
	switch c.Check.Auto {
	case AutoOff, AutoPrepend, AutoAppend:
	default:
		return fmt.Errorf("invalid check.auto %q: must be %q or %q", c.Check.Auto, AutoPrepend, AutoAppend)
	}
	for _, p := range c.Check.ExcludeBranches {
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("invalid exclude_branches pattern %q: %w", p, err)
		}
	}
	return nil
}

// Rules compiles the configuration into an immutable rules.Config.
func (c Config) Rules() (rules.Config, error) {
	rc := rules.Config{
		MultiIssueCommits: c.Check.MultiIssueCommits,
		AutoPrepend:       c.Check.Auto == AutoPrepend,
		AutoAppend:        c.Check.Auto == AutoAppend,
	}
	for _, p := range c.Check.ExcludeBranches {
		re, err := regexp.Compile(p)
		if err != nil {
			return rules.Config{}, &rules.Error{
				Kind:   rules.ConfigError,
				Detail: fmt.Sprintf("invalid exclude-branches pattern %q: %v", p, err),
			}
		}
		rc.ExcludeBranches = append(rc.ExcludeBranches, re)
	}
	if err := rc.Validate(); err != nil {
		return rules.Config{}, err
	}
	return rc, nil
}
