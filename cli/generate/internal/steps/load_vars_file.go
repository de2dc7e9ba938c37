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

// LoadVarsFile represents variables file load step.
type LoadVarsFile struct{}

type varDefinition struct {
	name  string
	value string
}

func parseVarDefinition(line string) (varDefinition, error) {
	line = strings.TrimSpace(line)
	name, value, found := strings.Cut(line, "=")
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if !found || name == "" || value == "" {
		return varDefinition{}, fmt.Errorf(formatError, line)
	}
	return varDefinition{name, value}, nil
}

// Run loads variables definitions from the vars file. Empty lines and lines
// starting with # are skipped.
func (LoadVarsFile) Run(generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	if generateCtx.VarsFile == "" {
		return nil
	}

	varsFilePath := generateCtx.VarsFile
	if !filepath.IsAbs(varsFilePath) && generateCtx.WorkDir != "" {
		varsFilePath = filepath.Join(generateCtx.WorkDir, varsFilePath)
	}

	varsFile, err := os.Open(varsFilePath)
	if err != nil {
		return util.NewIOError("open vars file", varsFilePath, err)
	}
	defer varsFile.Close()

	scanner := util.FileLinesScanner(varsFile)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		varDef, err := parseVarDefinition(line)
		if err != nil {
			return fmt.Errorf("failed to load vars from %s: %s", varsFilePath, err)
		}
		log.Debugf("Setting var from vars file: %s = %s", varDef.name, varDef.value)
		templateCtx.Vars[varDef.name] = varDef.value
	}

	if err = scanner.Err(); err != nil {
		return util.NewIOError("read vars file", varsFilePath, err)
	}

	return nil
}
