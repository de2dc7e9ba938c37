package cmd

import (
	"fmt"

	"github.com/butler-team/genproject/cli/cmdcontext"
	"github.com/butler-team/genproject/cli/configure"
	init_pkg "github.com/butler-team/genproject/cli/init"
	"github.com/spf13/cobra"
)

var initCtx init_pkg.InitCtx

// NewInitCmd creates genproject config with default settings in current working
// directory.
func NewInitCmd() *cobra.Command {
	var initCmd = &cobra.Command{
		Use:   "init [flags]",
		Short: "Create genproject config in current directory",
		Run:   RunModuleFunc(internalInitModule),
	}

	initCmd.Flags().BoolVarP(&initCtx.ForceMode, "force", "f", false,
		fmt.Sprintf(`Force re-write existing %s`, configure.ConfigName))

	return initCmd
}

// internalInitModule is a default init module.
func internalInitModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	init_pkg.FillCtx(&initCtx)
	return init_pkg.Run(&initCtx)
}
