package cmd

import (
	"os"

	"github.com/butler-team/genproject/cli/cmdcontext"
	"github.com/butler-team/genproject/cli/util"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// internalModule is a command implementation function.
type internalModule func(cmdCtx *cmdcontext.CmdCtx, args []string) error

// RunModuleFunc returns cobra run function for the command implementation.
func RunModuleFunc(module internalModule) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		cmdCtx.CommandName = cmd.Name()
		err := module(&cmdCtx, args)
		exitCode = util.HandleCmdErr(cmd, err)
	}
}

// isInteractive returns true if stdin is a terminal.
func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
