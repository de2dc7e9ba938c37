package steps

import (
	"fmt"

	"github.com/apex/log"
	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
)

// LoadManifest represents manifest load step.
type LoadManifest struct{}

// Run loads template manifest. Missing manifest is not an error: the built-in
// placeholder set is used.
func (LoadManifest) Run(generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	manifestPath := app_template.FindManifest(templateCtx.TemplatePath)
	if manifestPath == "" {
		log.Debug("There is no manifest in template, using built-in placeholders.")
		templateCtx.Manifest = app_template.NewDefaultManifest()
		templateCtx.IsManifestPresent = false
		return nil
	}

	manifest, err := app_template.LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest file: %s", err)
	}
	if manifest.Exclude == nil {
		manifest.Exclude = app_template.DefaultExclude
	}
	if manifest.FollowUpMessage == "" {
		manifest.FollowUpMessage = app_template.DefaultFollowUpMessage
	}

	templateCtx.Manifest = manifest
	templateCtx.IsManifestPresent = true
	return nil
}
