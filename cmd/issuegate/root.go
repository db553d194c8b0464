package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rkarlsb/issuegate/internal/git"
	"github.com/rkarlsb/issuegate/internal/log"
	"github.com/rkarlsb/issuegate/internal/output"
	"github.com/rkarlsb/issuegate/internal/rules"
	"github.com/rkarlsb/issuegate/internal/ui"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	workDir string
	styled  bool
)

// Command group IDs for organizing help output
const (
	GroupCheck = "check"
	GroupSetup = "setup"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "issuegate",
	Short: "Git hook that links branches and commits to issue numbers",
	Long: `issuegate validates the convention linking git branches and commit
messages to issue-tracker numbers:

  - branches are named <issue>-<slug>, e.g. 2325-fix-login
  - commit messages reference issues as #<digits>
  - the commit message must reference the branch's issue

It is meant to run as the pre-commit and commit-msg git hooks
(see 'issuegate install') and exits non-zero with a diagnostic
when a check fails.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed by now; wire the logger and printer here so
		// --verbose/--quiet take effect.
		ctx := cmd.Context()
		ctx = log.WithLogger(ctx, log.New(ui.Writer(os.Stderr), verbose, quiet))
		ctx = output.WithPrinter(ctx, os.Stdout)
		cmd.SetContext(ctx)

		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		// Check git is available
		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	var err error
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "issuegate: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Hooks usually run non-interactively; only style diagnostics when a
	// human is watching.
	styled = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		render := ui.NewRenderer(styled)
		fmt.Fprintln(ui.Writer(os.Stderr), render.Error(err.Error()))
		os.Exit(exitCode(err))
	}
}

// exitCode maps a rejection to the process exit status: 1 for branch
// problems, 2 for commit message problems, 3 for configuration problems.
func exitCode(err error) int {
	switch rules.KindOf(err) {
	case rules.InvalidBranchFormat:
		return 1
	case rules.MissingIssueNumber, rules.MultipleIssueNumbers, rules.IssueNumberMismatch:
		return 2
	case rules.ConfigError:
		return 3
	}
	return 1
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCheck, Title: "Check Commands:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup Commands:"},
	)

	// Check commands
	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newCommitMsgCmd())

	// Setup commands
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newUninstallCmd())
	rootCmd.AddCommand(newDoctorCmd())
}
