package init

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/butler-team/genproject/cli/config"
	"github.com/butler-team/genproject/cli/configure"
	"github.com/butler-team/genproject/cli/util"
)

const (
	defaultDirPermissions = os.FileMode(0o750)
)

// InitCtx contains information for genproject config creation.
type InitCtx struct {
	// ForceMode, if set, genproject config is re-written without a question.
	ForceMode bool
	// Dir is a directory to create config in. Current directory is used if empty.
	Dir string
	// reader to use for reading user input.
	reader io.Reader
}

// FillCtx initializes init context.
func FillCtx(initCtx *InitCtx) {
	initCtx.reader = os.Stdin
}

// generateConfig returns default genproject config: local templates directory,
// placeholder defaults and log options.
func generateConfig() config.Config {
	cliOpts := configure.GetDefaultCliOpts()
	cliOpts.Defaults = map[string]string{
		"author_name":  "Your Team",
		"author_email": "team@example.com",
	}
	return config.Config{CliConfig: cliOpts}
}

// checkExistingConfig checks genproject config for existence and asks for confirmation to
// overwrite. Returns file name if init process can continue, and empty string otherwise.
func checkExistingConfig(initCtx *InitCtx) (string, error) {
	configName, err := util.GetYamlFileName(filepath.Join(initCtx.Dir, configure.ConfigName),
		false)
	if err != nil {
		return "", err
	}
	if configName == "" {
		return filepath.Join(initCtx.Dir, configure.ConfigName), nil
	}

	if !initCtx.ForceMode {
		confirmed, err := util.AskConfirm(initCtx.reader,
			fmt.Sprintf("%s already exists. Overwrite?", configName))
		if err != nil {
			return "", err
		}
		if !confirmed {
			log.Info("Init is cancelled by user.")
			return "", nil
		}
	}
	if err = os.Remove(configName); err != nil {
		return "", err
	}
	return configName, nil
}

// Run creates genproject config and templates directory.
func Run(initCtx *InitCtx) error {
	if initCtx.reader == nil {
		initCtx.reader = os.Stdin
	}

	configName, err := checkExistingConfig(initCtx)
	if configName == "" {
		return err
	}

	cfg := generateConfig()
	if err := util.WriteYaml(configName, cfg); err != nil {
		return err
	}

	for _, templatesPathOpts := range cfg.CliConfig.Templates {
		templatesDir := filepath.Join(initCtx.Dir, templatesPathOpts.Path)
		if err := util.CreateDirectory(templatesDir, defaultDirPermissions); err != nil {
			return err
		}
		log.Debugf("'%s' directory is created.", templatesDir)
	}

	log.Infof("Generator config is written to '%s'", configName)
	return nil
}
