package steps

import (
	"os"

	"github.com/apex/log"
	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
	"github.com/butler-team/genproject/cli/util"
	"github.com/otiai10/copy"
)

// MoveAppDirectory represents staging directory move step.
type MoveAppDirectory struct{}

// Run moves staging directory to the target. The target is the only path written
// outside of temporary directories.
func (MoveAppDirectory) Run(generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	if templateCtx.TargetAppPath == "" {
		return nil
	}

	templateCtx.TargetWritten = true
	if err := copy.Copy(templateCtx.AppPath, templateCtx.TargetAppPath); err != nil {
		return util.NewIOError("copy project to", templateCtx.TargetAppPath, err)
	}
	templateCtx.TargetComplete = true

	if err := os.RemoveAll(templateCtx.AppPath); err != nil {
		log.Warnf("Failed to remove staging directory: %s", err)
	}
	templateCtx.AppPath = ""

	log.Infof("Project %q is generated in %q",
		templateCtx.Vars[app_template.ProjectNameKey], templateCtx.TargetAppPath)
	return nil
}
