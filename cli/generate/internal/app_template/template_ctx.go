package app_template

import (
	"github.com/butler-team/genproject/cli/templates/engines"
	"github.com/butler-team/genproject/cli/templates/substitution"
)

// TemplateCtx contains an information required for project template rendering.
type TemplateCtx struct {
	// TemplatePath is a path to the template directory to generate the project from.
	TemplatePath string
	// ScratchPath is a temporary directory the built-in template is extracted to.
	ScratchPath string
	// AppPath is a path to the staging directory. Project template is
	// instantiated in this directory.
	AppPath string
	// TargetAppPath is a path directory where the project is moved to
	// after instantiation.
	TargetAppPath string
	// TargetCreated is true if the target directory did not exist before the run.
	TargetCreated bool
	// TargetWritten is true after the project copying to the target has started.
	TargetWritten bool
	// TargetComplete is true after the project is fully copied to the target.
	// A complete target is never rolled back.
	TargetComplete bool
	// Manifest is a loaded template manifest.
	Manifest TemplateManifest
	// IsManifestPresent is true if a template manifest is loaded from the template.
	// False - the built-in placeholder set is used.
	IsManifestPresent bool
	// Vars is a map of variables to be used for template rendering.
	Vars map[string]string
	// FollowUpText is the rendered follow-up message.
	FollowUpText string
	// Substitutions is an ordered token replacement list built from Vars.
	Substitutions *substitution.List
	// Engine is a template engine used to render defaults and messages.
	Engine engines.TemplateEngine
}

// NewTemplateContext creates new project template context.
func NewTemplateContext() TemplateCtx {
	var ctx TemplateCtx
	ctx.Vars = make(map[string]string)
	ctx.Manifest = NewDefaultManifest()
	ctx.Engine = engines.NewDefaultEngine()
	return ctx
}
