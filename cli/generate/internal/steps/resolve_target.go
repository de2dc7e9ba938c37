package steps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
	"github.com/butler-team/genproject/cli/util"
)

// ResolveTarget represents target directory resolving step.
type ResolveTarget struct {
	// Reader is used to get user input. Generate context stdin is read if nil.
	Reader Reader
}

// isSubPath returns true if path is base or is located inside base.
func isSubPath(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// Run chooses the target directory. An existing non-empty directory is never used.
func (resolveTarget ResolveTarget) Run(generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	targetPath := generateCtx.DestinationDir
	if targetPath == "" {
		defaultPath := filepath.Join(generateCtx.WorkDir,
			templateCtx.Vars[app_template.ProjectNameKey])
		targetPath = defaultPath
		if !generateCtx.SilentMode {
			reader := resolveTarget.Reader
			if reader == nil {
				reader = NewConsoleReader(stdin(generateCtx))
			}
			fmt.Fprintf(stdout(generateCtx), "Target directory (default: %s): ", defaultPath)
			input, err := reader.readLine()
			if err != nil {
				return fmt.Errorf("error reading user input: %s", err)
			}
			if input = strings.TrimSpace(input); input != "" {
				targetPath = input
			}
		}
	}

	if !filepath.IsAbs(targetPath) {
		targetPath = filepath.Join(generateCtx.WorkDir, targetPath)
	}
	targetPath, err := filepath.Abs(targetPath)
	if err != nil {
		return err
	}

	if templateCtx.TemplatePath != "" && isSubPath(templateCtx.TemplatePath, targetPath) {
		return fmt.Errorf("target directory %q is inside the template %q",
			targetPath, templateCtx.TemplatePath)
	}

	stat, err := os.Stat(targetPath)
	switch {
	case os.IsNotExist(err):
		templateCtx.TargetCreated = true
	case err != nil:
		return util.NewIOError("stat", targetPath, err)
	case !stat.IsDir():
		return &util.ConflictError{Path: targetPath}
	default:
		empty, err := util.IsEmptyDir(targetPath)
		if err != nil {
			return util.NewIOError("read", targetPath, err)
		}
		if !empty {
			return &util.ConflictError{Path: targetPath}
		}
		templateCtx.TargetCreated = false
	}

	log.Infof("Generating project in %q", targetPath)
	templateCtx.TargetAppPath = targetPath
	templateCtx.Vars[app_template.TargetDirKey] = targetPath
	return nil
}
