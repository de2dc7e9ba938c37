package steps

import (
	"os"
	"path/filepath"

	"github.com/apex/log"
	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
	"github.com/butler-team/genproject/cli/util"
	"github.com/otiai10/copy"
)

const defaultPermissions = os.FileMode(0o755)

// CopyAppTemplate represents template copy step.
type CopyAppTemplate struct{}

// isExcluded returns true if relPath matches one of the patterns. A pattern is
// matched against the file name and against the whole relative path.
func isExcluded(patterns []string, relPath string) bool {
	baseName := filepath.Base(relPath)
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, baseName); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, relPath); matched {
			return true
		}
	}
	return false
}

// Run copies the template file set into the staging directory.
func (CopyAppTemplate) Run(generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	patterns := append([]string{}, templateCtx.Manifest.Exclude...)
	patterns = append(patterns, app_template.ManifestNames[:]...)

	err := copy.Copy(templateCtx.TemplatePath, templateCtx.AppPath, copy.Options{
		Skip: func(srcinfo os.FileInfo, src, dest string) (bool, error) {
			relPath, err := filepath.Rel(templateCtx.TemplatePath, src)
			if err != nil || relPath == "." {
				return false, err
			}
			if isExcluded(patterns, relPath) {
				log.Debugf("Skipping %s", relPath)
				return true, nil
			}
			return false, nil
		},
		OnSymlink: func(string) copy.SymlinkAction {
			return copy.Deep
		},
	})
	if err != nil {
		return util.NewIOError("copy template", templateCtx.TemplatePath, err)
	}
	if err = os.Chmod(templateCtx.AppPath, defaultPermissions); err != nil {
		return util.NewIOError("chmod", templateCtx.AppPath, err)
	}
	return nil
}
