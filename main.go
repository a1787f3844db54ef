//go:build !(js || wasm)

package main

import (
	"os"

	"github.com/cottand/sugar/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "sugar [subcommand]",
	Short:        "sugar rewrites parsed syntax trees into their canonical core",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.NewDesugarCmd())
	rootCmd.AddCommand(cmd.NewCheckCmd())
}
