package generate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/butler-team/genproject/cli/config"
	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
	"github.com/butler-team/genproject/cli/generate/internal/steps"
	"github.com/butler-team/genproject/cli/util"
	"github.com/butler-team/genproject/cli/version"
)

// FillCtx fills generate context.
func FillCtx(cliOpts *config.CliOpts, generateCtx *generate_ctx.GenerateCtx,
	args []string,
) error {
	if cliOpts != nil {
		for _, p := range cliOpts.Templates {
			generateCtx.TemplateSearchPaths = append(generateCtx.TemplateSearchPaths, p.Path)
		}
	}
	generateCtx.CliOpts = cliOpts

	if len(args) > 1 {
		return util.NewArgError("too many arguments: only target directory is expected")
	}
	if len(args) == 1 {
		if generateCtx.DestinationDir != "" && generateCtx.DestinationDir != args[0] {
			return util.NewArgError("target directory is specified twice: " +
				"use either the argument or the --dst option")
		}
		generateCtx.DestinationDir = args[0]
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	generateCtx.WorkDir = workingDir

	return nil
}

// emptyDir removes all entries of dirPath, keeping the directory itself.
func emptyDir(dirPath string) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err = os.RemoveAll(filepath.Join(dirPath, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// rollbackOnErr removes temporary directories. Partially written target is removed
// if the run created it, or emptied if it was an empty directory before the run.
// A completely generated target is kept.
func rollbackOnErr(templateCtx *app_template.TemplateCtx) {
	for _, tmpPath := range []string{templateCtx.AppPath, templateCtx.ScratchPath} {
		if tmpPath != "" {
			os.RemoveAll(tmpPath)
		}
	}
	templateCtx.AppPath = ""
	templateCtx.ScratchPath = ""

	if !templateCtx.TargetWritten || templateCtx.TargetComplete ||
		templateCtx.TargetAppPath == "" {
		return
	}
	var err error
	if templateCtx.TargetCreated {
		err = os.RemoveAll(templateCtx.TargetAppPath)
	} else {
		err = emptyDir(templateCtx.TargetAppPath)
	}
	if err != nil {
		log.Warnf("Failed to clean up %s: %s", templateCtx.TargetAppPath, err)
	}
}

// Run generates a project from a template.
func Run(generateCtx *generate_ctx.GenerateCtx) error {
	if err := checkCtx(generateCtx); err != nil {
		return util.InternalError("Generate context check failed: %s", version.GetVersion, err)
	}

	var stdin io.Reader = os.Stdin
	if generateCtx.Stdin != nil {
		stdin = generateCtx.Stdin
	}
	// Both prompting steps share one buffered reader.
	reader := steps.NewConsoleReader(stdin)

	stepsChain := []steps.Step{
		steps.SetPredefinedVariables{},
		steps.LoadVarsFile{},
		steps.FillTemplateVarsFromCli{},
		steps.LocateTemplate{},
		steps.LoadManifest{},
		steps.CollectTemplateVarsFromUser{Reader: reader},
		steps.DeriveVariables{},
		steps.ValidateVariables{},
		steps.ResolveTarget{Reader: reader},
		steps.RenderFollowUpMessage{},
		steps.CreateStagingDirectory{},
		steps.CopyAppTemplate{},
		steps.RenderTemplate{},
		steps.MoveAppDirectory{},
		steps.Cleanup{},
		steps.PrintFollowUpMessage{},
	}

	templateCtx := app_template.NewTemplateContext()
	for _, step := range stepsChain {
		if err := step.Run(generateCtx, &templateCtx); err != nil {
			rollbackOnErr(&templateCtx)
			return err
		}
	}

	return nil
}

// checkCtx checks generate context for validity.
func checkCtx(ctx *generate_ctx.GenerateCtx) error {
	if ctx.WorkDir == "" {
		return fmt.Errorf("working directory is not set")
	}
	return nil
}
