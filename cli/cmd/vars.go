package cmd

import (
	"fmt"
	"os"

	"github.com/butler-team/genproject/cli/cmdcontext"
	"github.com/butler-team/genproject/cli/formatter"
	"github.com/butler-team/genproject/cli/generate"
	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/util"
	"github.com/spf13/cobra"
)

var (
	varsTemplateName string
	varsTableFormat  string
	varsGraphics     bool
	varsWidthMax     int
)

// NewVarsCmd creates a command printing template variables.
func NewVarsCmd() *cobra.Command {
	var varsCmd = &cobra.Command{
		Use:   "vars [flags]",
		Short: "Show template variables: keys, tokens, defaults and prompts",
		Run:   RunModuleFunc(internalVarsModule),
		Args:  cobra.NoArgs,
	}

	varsCmd.Flags().StringVarP(&varsTemplateName, "template", "t", "",
		"Template name or path to template directory")
	varsCmd.Flags().StringVar(&varsTableFormat, "format", "default",
		"Table format: default or markdown")
	varsCmd.Flags().BoolVar(&varsGraphics, "graphics", false, "Draw table borders")
	varsCmd.Flags().IntVar(&varsWidthMax, "width", 0, "Maximum width of columns")
	varsCmd.RegisterFlagCompletionFunc("template", templateCompletionFunc)

	return varsCmd
}

// internalVarsModule is a default vars module.
func internalVarsModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	dialect, ok := formatter.ParseTableDialect(varsTableFormat)
	if !ok {
		return util.NewArgError(fmt.Sprintf("unknown table format %q", varsTableFormat))
	}

	generateCtx := generate_ctx.GenerateCtx{TemplateName: varsTemplateName}
	if err := generate.FillCtx(cliOpts, &generateCtx, args); err != nil {
		return err
	}

	return generate.PrintVars(&generateCtx, os.Stdout, formatter.Opts{
		Graphics:       varsGraphics,
		ColumnWidthMax: varsWidthMax,
		TableDialect:   dialect,
	})
}
