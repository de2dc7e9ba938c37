package steps

import (
	"os"

	"github.com/apex/log"
	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
)

// Cleanup represents temporary directories cleanup step.
type Cleanup struct{}

func removeTemporary(path *string) {
	if *path == "" {
		return
	}
	log.Debugf("Removing %s", *path)
	if err := os.RemoveAll(*path); err != nil {
		log.Warnf("Failed to remove %s: %s", *path, err)
	}
	*path = ""
}

// Run removes staging and scratch directories.
func (Cleanup) Run(generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	removeTemporary(&templateCtx.AppPath)
	removeTemporary(&templateCtx.ScratchPath)
	return nil
}
