package cmd

import (
	"fmt"

	"github.com/cottand/sugar/frontend/ast"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewDesugarCmd builds the command that prints desugared trees
func NewDesugarCmd() *cobra.Command {
	flags := &commonFlags{}
	c := &cobra.Command{
		Use:   "desugar ./folder|file.sugar...",
		Short: "Desugar trees and print the result",
		RunE: func(c *cobra.Command, args []string) error {
			return runDesugar(c, flags, args)
		},
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
	}
	flags.register(c)
	return c
}

func runDesugar(c *cobra.Command, flags *commonFlags, args []string) error {
	pkg, err := loadAndDesugar(c, flags, args)
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	for _, unit := range pkg.Units {
		if unit.Root == nil {
			continue
		}
		if len(pkg.Units) > 1 {
			_, _ = fmt.Fprintln(out, headerFmt("// %s", unit.Name))
		}
		_, _ = fmt.Fprintln(out, ast.Pretty(unit.Root))
	}

	if count := writeDiagnostics(c.ErrOrStderr(), pkg.Errors(), pkg.FileSet()); count > 0 {
		return errors.Errorf("%d errors found during desugaring", count)
	}
	return nil
}
