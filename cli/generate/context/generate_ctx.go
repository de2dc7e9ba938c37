package generate_ctx

import (
	"io"

	"github.com/butler-team/genproject/cli/config"
)

// GenerateCtx contains information for generating projects from templates.
type GenerateCtx struct {
	// ProjectName is a lowercase project name provided in command line.
	ProjectName string
	// WorkDir is genproject launch working directory.
	WorkDir string
	// DestinationDir is the path where the project will be created. Empty
	// value means the path is asked or derived from the project name.
	DestinationDir string
	// TemplateSearchPaths is a set of paths to search for a template.
	TemplateSearchPaths []string
	// TemplateName is a template name or a path to the template directory.
	// Empty value selects the built-in template.
	TemplateName string
	// VarsFromCli template variables definitions provided in command line.
	VarsFromCli []string
	// SilentMode if set, disables user interaction. All invalid format errors fail
	// project generation.
	SilentMode bool
	// VarsFile is a file with variables definitions.
	VarsFile string
	// Stdin is used to read user input. os.Stdin is used if nil.
	Stdin io.Reader
	// Stdout receives prompts and the follow-up message. os.Stdout is used if nil.
	Stdout io.Writer
	// CliOpts is loaded genproject config.
	CliOpts *config.CliOpts
}
