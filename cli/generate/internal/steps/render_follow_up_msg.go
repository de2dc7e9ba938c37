package steps

import (
	"fmt"

	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
)

// RenderFollowUpMessage represents follow-up message render step. The message is
// rendered before the project is written, so a broken message fails the run
// without leaving output behind.
type RenderFollowUpMessage struct{}

// Run renders the manifest follow-up message over template variables.
func (RenderFollowUpMessage) Run(generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	templateCtx.FollowUpText = ""
	if templateCtx.Manifest.FollowUpMessage == "" {
		return nil
	}

	followUpText, err := templateCtx.Engine.RenderText(templateCtx.Manifest.FollowUpMessage,
		templateCtx.Vars)
	if err != nil {
		return fmt.Errorf("failed to render follow-up message: %s", err)
	}
	templateCtx.FollowUpText = followUpText
	return nil
}
