package steps

import (
	"fmt"
	"io"

	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
	"github.com/butler-team/genproject/cli/util"
	"github.com/fatih/color"
)

// PrintFollowUpMessage represents follow-up message print step.
type PrintFollowUpMessage struct {
	// Writer is used to write follow-up message. Generate context stdout is used
	// if nil.
	Writer io.Writer
}

// Run prints project template follow-up message rendered by RenderFollowUpMessage.
func (printFollowUpMsgStep PrintFollowUpMessage) Run(generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	if templateCtx.FollowUpText == "" || generateCtx.SilentMode {
		return nil
	}

	writer := printFollowUpMsgStep.Writer
	if writer == nil {
		writer = stdout(generateCtx)
	}
	fmt.Fprintf(writer, "%s %s\n", color.GreenString("✓"),
		util.Bold(fmt.Sprintf("%s is ready", templateCtx.Vars[app_template.ProjectNameKey])))
	fmt.Fprintln(writer, templateCtx.FollowUpText)
	return nil
}
