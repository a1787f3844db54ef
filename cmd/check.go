package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewCheckCmd builds the command that only reports diagnostics
func NewCheckCmd() *cobra.Command {
	flags := &commonFlags{}
	c := &cobra.Command{
		Use:   "check ./folder|file.sugar...",
		Short: "Report desugaring diagnostics without printing trees",
		RunE: func(c *cobra.Command, args []string) error {
			return runCheck(c, flags, args)
		},
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
	}
	flags.register(c)
	return c
}

func runCheck(c *cobra.Command, flags *commonFlags, args []string) error {
	pkg, err := loadAndDesugar(c, flags, args)
	if err != nil {
		return err
	}

	if count := writeDiagnostics(c.ErrOrStderr(), pkg.Errors(), pkg.FileSet()); count > 0 {
		return errors.Errorf("%d errors found in %d files", count, len(pkg.Units))
	}
	changed := 0
	for _, unit := range pkg.Units {
		changed += unit.Stats.Changed()
	}
	_, _ = fmt.Fprintln(c.OutOrStdout(), okFmt("ok: %d files, %d nodes desugared", len(pkg.Units), changed))
	return nil
}
