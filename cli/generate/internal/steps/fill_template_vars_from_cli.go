package steps

import (
	"github.com/apex/log"
	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
)

const formatError = `wrong variable definition format: %q
Usage: --var "var-name=value"`

// FillTemplateVarsFromCli represents a step collecting variables from command line.
type FillTemplateVarsFromCli struct{}

// Run collects variables passed using command line args. They override values
// loaded from the vars file.
func (FillTemplateVarsFromCli) Run(generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	for _, varDefinition := range generateCtx.VarsFromCli {
		varDef, err := parseVarDefinition(varDefinition)
		if err != nil {
			return err
		}
		log.Debugf("Setting var from CLI: %s = %s", varDef.name, varDef.value)
		templateCtx.Vars[varDef.name] = varDef.value
	}
	return nil
}
