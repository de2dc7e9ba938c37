package cmd

import (
	"os"

	"github.com/butler-team/genproject/cli/cmdcontext"
	"github.com/butler-team/genproject/cli/generate"
	"github.com/butler-team/genproject/cli/generate/builtin_templates"
	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/spf13/cobra"
)

var (
	projectName        string
	templateName       string
	dstPath            string
	nonInteractiveMode bool
	varsFromCli        *[]string
	varsFile           string
)

// NewGenerateCmd creates a project from a template.
func NewGenerateCmd() *cobra.Command {
	var generateCmd = &cobra.Command{
		Use:               "generate [TARGET_DIR] [flags]",
		Short:             "Generate a project from a template",
		Run:               RunModuleFunc(internalGenerateModule),
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: generateValidArgsFunction,
		Long: `Generate a project from a template.

Every placeholder token of the template is replaced with the variable value in
file contents and in file and directory names.

Built-in templates:
	backend: a FastAPI backend service.`,
		Example: `
# Generate a project interactively.

    $ genproject generate

# Generate weather-api project in ./weather-api without questions.

    $ genproject generate --name weather-api --non-interactive \
        --var "project_name_title=Weather API" --var "author_name=Acme"

# Generate a project from a custom template into /opt/src/weather-api.

    $ genproject generate /opt/src/weather-api -t ./my-template -n weather-api`,
	}

	generateCmd.Flags().StringVarP(&projectName, "name", "n", "", "Project name")
	generateCmd.Flags().StringVarP(&templateName, "template", "t", "",
		"Template name or path to template directory")
	generateCmd.Flags().BoolVarP(&nonInteractiveMode, "non-interactive", "s", false,
		`Non-interactive mode`)

	varsFromCli = generateCmd.Flags().StringArray("var", []string{},
		"Variable definition. Usage: --var var_name=value")
	generateCmd.Flags().StringVarP(&varsFile, "vars-file", "", "", "Variables definition file path")
	generateCmd.Flags().StringVarP(&dstPath, "dst", "d", "",
		"Path to the directory where the project will be created.")

	generateCmd.RegisterFlagCompletionFunc("template", templateCompletionFunc)

	return generateCmd
}

// availableTemplates returns built-in templates and templates of configured
// search paths.
func availableTemplates() []string {
	templates := make([]string, 0, len(builtin_templates.Names))
	templates = append(templates, builtin_templates.Names[:]...)

	if cliOpts == nil {
		return templates
	}
	for _, templateDir := range cliOpts.Templates {
		entries, err := os.ReadDir(templateDir.Path)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				templates = append(templates, entry.Name())
			}
		}
	}
	return templates
}

func templateCompletionFunc(_ *cobra.Command, _ []string,
	_ string,
) ([]string, cobra.ShellCompDirective) {
	return availableTemplates(), cobra.ShellCompDirectiveNoFileComp
}

// generateValidArgsFunction completes target directory argument.
func generateValidArgsFunction(
	_ *cobra.Command,
	args []string,
	toComplete string,
) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// newGenerateCtx creates generate context from command line flags.
func newGenerateCtx(args []string) (*generate_ctx.GenerateCtx, error) {
	generateCtx := generate_ctx.GenerateCtx{
		ProjectName:    projectName,
		TemplateName:   templateName,
		SilentMode:     nonInteractiveMode || !isInteractive(),
		VarsFromCli:    *varsFromCli,
		VarsFile:       varsFile,
		DestinationDir: dstPath,
	}

	if err := generate.FillCtx(cliOpts, &generateCtx, args); err != nil {
		return nil, err
	}
	return &generateCtx, nil
}

// internalGenerateModule is a default generate module.
func internalGenerateModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	generateCtx, err := newGenerateCtx(args)
	if err != nil {
		return err
	}
	return generate.Run(generateCtx)
}
