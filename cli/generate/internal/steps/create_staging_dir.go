package steps

import (
	"fmt"
	"os"

	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
)

// CreateStagingDirectory represents create staging directory step.
type CreateStagingDirectory struct{}

// Run creates temporary directory the project is instantiated in.
func (CreateStagingDirectory) Run(generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	var err error
	templateCtx.AppPath, err = os.MkdirTemp("",
		"genproject-"+templateCtx.Vars[app_template.ProjectNameKey]+"*")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %s", err)
	}
	return nil
}
