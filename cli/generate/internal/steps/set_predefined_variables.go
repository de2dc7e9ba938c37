package steps

import (
	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
)

// SetPredefinedVariables represents a step for setting pre-defined variables.
type SetPredefinedVariables struct{}

// Run sets predefined variables values.
func (SetPredefinedVariables) Run(generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	if generateCtx.ProjectName != "" {
		templateCtx.Vars[app_template.ProjectNameKey] = generateCtx.ProjectName
	}
	return nil
}
