package steps

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
	"github.com/butler-team/genproject/cli/templates/engines"
	"github.com/butler-team/genproject/cli/util"
)

// RenderTemplate represents template render step.
type RenderTemplate struct{}

// renameEntry replaces tokens in the base name of filePath.
func renameEntry(engine engines.TemplateEngine, filePath string) error {
	baseName := filepath.Base(filePath)
	newName, err := engine.RenderText(baseName, nil)
	if err != nil {
		return fmt.Errorf("failed file name processing %s: %s", filePath, err)
	}
	if newName == baseName {
		return nil
	}
	if strings.ContainsRune(newName, filepath.Separator) {
		return util.NewIOError("rename", filePath,
			fmt.Errorf("new name %q contains a path separator", newName))
	}

	newPath := filepath.Join(filepath.Dir(filePath), newName)
	if _, err := os.Lstat(newPath); err == nil {
		return util.NewIOError("rename", filePath, fmt.Errorf("%s: %w", newPath, fs.ErrExist))
	}
	log.Debugf("Renaming %s to %s", filePath, newName)
	if err := os.Rename(filePath, newPath); err != nil {
		return util.NewIOError("rename", filePath, err)
	}
	return nil
}

// warnResidual logs tokens left in a rendered file. Binary files are copied as is,
// so a token in them is kept.
func warnResidual(templateCtx *app_template.TemplateCtx, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return util.NewIOError("read", filePath, err)
	}
	tokens := templateCtx.Substitutions.Residual(string(data))
	if len(tokens) == 0 {
		return nil
	}
	relPath, err := filepath.Rel(templateCtx.AppPath, filePath)
	if err != nil {
		relPath = filePath
	}
	log.Warnf("%s still contains %s", relPath, strings.Join(tokens, ", "))
	return nil
}

// Run substitutes tokens in file contents, then in file and directory names.
// Names are processed bottom-up, so a directory is renamed after its entries.
func (RenderTemplate) Run(generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	if templateCtx.Substitutions == nil {
		return fmt.Errorf("substitutions are not built")
	}
	engine := engines.NewLiteralEngine(templateCtx.Substitutions)

	var paths []string
	err := filepath.Walk(templateCtx.AppPath,
		func(filePath string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return util.NewIOError("walk", filePath, err)
			}
			if filePath == templateCtx.AppPath {
				return nil
			}
			paths = append(paths, filePath)
			if fileInfo.Mode().IsRegular() {
				if err := engine.RenderFile(filePath, filePath, nil); err != nil {
					return err
				}
				return warnResidual(templateCtx, filePath)
			}
			return nil
		})
	if err != nil {
		return err
	}

	for i := len(paths) - 1; i >= 0; i-- {
		if err = renameEntry(engine, paths[i]); err != nil {
			return err
		}
	}
	return nil
}
