package main

import (
	"github.com/spf13/cobra"

	"github.com/rkarlsb/issuegate/internal/ui"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose the hook setup in the current repository",
		GroupID: GroupSetup,
		Args:    cobra.NoArgs,
		Long: `Check that everything the hooks need is in place: git on PATH, a
git repository, a valid configuration, and installed hook scripts.
Exits non-zero when a check fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.Context(), ui.NewRenderer(styled), workDir)
		},
	}

	return cmd
}
