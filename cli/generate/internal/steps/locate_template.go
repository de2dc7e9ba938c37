package steps

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/apex/log"
	"github.com/butler-team/genproject/cli/generate/builtin_templates"
	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
	"github.com/butler-team/genproject/cli/util"
	"github.com/manifoldco/promptui"
)

// SelectFunc asks the user to choose one of the items.
type SelectFunc func(label string, items []string) (string, error)

// LocateTemplate represents template lookup step.
type LocateTemplate struct {
	// Select is used to choose a template when several are available and none is
	// specified. promptui selection is used if nil.
	Select SelectFunc
}

func promptSelect(label string, items []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
	}
	_, result, err := prompt.Run()
	if err == promptui.ErrInterrupt || err == promptui.ErrEOF {
		return "", util.ErrCmdAbort
	}
	return result, err
}

// FindTemplates returns names of templates found in search paths followed by
// built-in template names. A template found in the search paths hides the
// built-in one with the same name.
func FindTemplates(searchPaths []string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, searchPath := range searchPaths {
		entries, err := os.ReadDir(searchPath)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() && !seen[entry.Name()] {
				seen[entry.Name()] = true
				names = append(names, entry.Name())
			}
		}
	}
	sort.Strings(names)
	for _, name := range builtin_templates.Names {
		if !seen[name] {
			names = append(names, name)
		}
	}
	return names
}

// lookupTemplate returns a path of the template directory. Built-in template is
// extracted into a scratch directory.
func lookupTemplate(generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx, name string,
) (string, error) {
	// A name with a path separator is a path to the template.
	if filepath.Base(name) != name || name == "." || name == ".." {
		templatePath := name
		if !filepath.IsAbs(templatePath) {
			templatePath = filepath.Join(generateCtx.WorkDir, templatePath)
		}
		if !util.IsDir(templatePath) {
			return "", fmt.Errorf("template directory %q is not found", templatePath)
		}
		return templatePath, nil
	}

	for _, searchPath := range generateCtx.TemplateSearchPaths {
		templatePath := filepath.Join(searchPath, name)
		if util.IsDir(templatePath) {
			return templatePath, nil
		}
	}

	if builtin_templates.IsBuiltin(name) {
		scratchPath, err := os.MkdirTemp("", "genproject-template*")
		if err != nil {
			return "", fmt.Errorf("failed to create scratch directory: %s", err)
		}
		templateCtx.ScratchPath = scratchPath
		if err = builtin_templates.Extract(name, scratchPath); err != nil {
			return "", err
		}
		log.Debugf("Built-in template %q is extracted to %s", name, scratchPath)
		return scratchPath, nil
	}

	return "", fmt.Errorf("template %q is not found", name)
}

// Run finds the template to generate the project from.
func (locateTemplate LocateTemplate) Run(generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	name := generateCtx.TemplateName
	if name == "" {
		name = builtin_templates.DefaultName
		available := FindTemplates(generateCtx.TemplateSearchPaths)
		if len(available) > 1 && !generateCtx.SilentMode {
			selectTemplate := locateTemplate.Select
			if selectTemplate == nil {
				selectTemplate = promptSelect
			}
			var err error
			if name, err = selectTemplate("Select a template", available); err != nil {
				return err
			}
		}
	}

	templatePath, err := lookupTemplate(generateCtx, templateCtx, name)
	if err != nil {
		return err
	}
	if templateCtx.TemplatePath, err = filepath.Abs(templatePath); err != nil {
		return err
	}
	log.Infof("Using template from %s", templateCtx.TemplatePath)
	return nil
}
