package generate

import (
	"fmt"
	"io"

	"github.com/butler-team/genproject/cli/formatter"
	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
	"github.com/butler-team/genproject/cli/generate/internal/steps"
)

const derivedPrompt = "(derived)"

// PrintVars prints the placeholder set of the template as a table.
func PrintVars(generateCtx *generate_ctx.GenerateCtx, writer io.Writer,
	opts formatter.Opts,
) error {
	// Template selection is not asked, vars of the default template are printed.
	listCtx := *generateCtx
	listCtx.SilentMode = true

	templateCtx := app_template.NewTemplateContext()
	defer steps.Cleanup{}.Run(&listCtx, &templateCtx)

	stepsChain := []steps.Step{
		steps.LocateTemplate{},
		steps.LoadManifest{},
	}
	for _, step := range stepsChain {
		if err := step.Run(&listCtx, &templateCtx); err != nil {
			return err
		}
	}

	rows := make([][]string, 0, len(templateCtx.Manifest.Vars))
	for _, varInfo := range templateCtx.Manifest.Vars {
		prompt := varInfo.Prompt
		if varInfo.IsDerived() {
			prompt = derivedPrompt
		}
		rows = append(rows, []string{varInfo.Key, varInfo.Token, varInfo.Default, prompt})
	}

	if templateCtx.Manifest.Description != "" {
		fmt.Fprintf(writer, "%s: %s\n", templateCtx.TemplatePath,
			templateCtx.Manifest.Description)
	}
	_, err := io.WriteString(writer, formatter.RenderTable(
		[]string{"key", "token", "default", "prompt"}, rows, opts))
	return err
}
