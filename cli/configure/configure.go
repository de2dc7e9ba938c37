package configure

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/multi"
	"github.com/butler-team/genproject/cli/cmdcontext"
	"github.com/butler-team/genproject/cli/config"
	"github.com/butler-team/genproject/cli/runlog"
	"github.com/butler-team/genproject/cli/util"
	"github.com/mitchellh/mapstructure"
)

const (
	ConfigName = "genproject.yaml"
	// configPathEnvName is an environment variable that contains a path to
	// the configuration file.
	configPathEnvName = "GENPROJECT_CFG"
	// TemplatesPath is a default templates directory name.
	TemplatesPath = "templates"
)

const (
	defaultLogLevel      = "info"
	defaultLogMaxSize    = 100
	defaultLogMaxAge     = 8
	defaultLogMaxBackups = 10
)

// GetDefaultCliOpts returns `CliOpts` filled with default values.
func GetDefaultCliOpts() *config.CliOpts {
	return &config.CliOpts{
		Templates: []config.TemplateOpts{
			{Path: TemplatesPath},
		},
		Log: &config.LogOpts{
			Level:      defaultLogLevel,
			MaxSize:    defaultLogMaxSize,
			MaxAge:     defaultLogMaxAge,
			MaxBackups: defaultLogMaxBackups,
		},
	}
}

// adjustPathWithConfigLocation adjust provided filePath with configDir.
// Absolute filePath is returned as is. Relative filePath is calculated relative to configDir.
// If filePath is empty, defaultDirName is appended to configDir.
func adjustPathWithConfigLocation(filePath, configDir string,
	defaultDirName string,
) (string, error) {
	if filePath == "" {
		if defaultDirName == "" {
			return "", nil
		}
		return filepath.Abs(filepath.Join(configDir, defaultDirName))
	}
	if filepath.IsAbs(filePath) {
		return filePath, nil
	}
	return filepath.Abs(filepath.Join(configDir, filePath))
}

// updateCliOpts resolves all paths in config relative to specified location, and
// sets uninitialized values to defaults.
func updateCliOpts(cliOpts *config.CliOpts, configDir string) error {
	var err error

	for i := range cliOpts.Templates {
		if cliOpts.Templates[i].Path, err = adjustPathWithConfigLocation(
			cliOpts.Templates[i].Path, configDir, "."); err != nil {
			return err
		}
	}

	if cliOpts.Log == nil {
		cliOpts.Log = GetDefaultCliOpts().Log
	}
	if cliOpts.Log.Level == "" {
		cliOpts.Log.Level = defaultLogLevel
	}
	if cliOpts.Log.File, err = adjustPathWithConfigLocation(cliOpts.Log.File, configDir,
		""); err != nil {
		return err
	}

	return nil
}

func decodeConfig(input map[string]any, cfg *config.Config) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// GetCliOpts returns genproject options from the config file
// located at path configurePath. Default options are returned if
// configurePath is empty.
func GetCliOpts(configurePath string) (*config.CliOpts, error) {
	cfg := config.Config{CliConfig: GetDefaultCliOpts()}

	configDir := ""
	if configurePath != "" {
		rawConfigOpts, err := util.ParseYAML(configurePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse genproject configuration: %s", err)
		}

		if err := decodeConfig(rawConfigOpts, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse genproject configuration: %s", err)
		}

		if cfg.CliConfig == nil {
			return nil,
				fmt.Errorf("failed to parse genproject configuration: missing genproject section")
		}

		if configDir, err = filepath.Abs(filepath.Dir(configurePath)); err != nil {
			return nil, err
		}
	} else {
		var err error
		if configDir, err = os.Getwd(); err != nil {
			return nil, err
		}
	}

	if err := updateCliOpts(cfg.CliConfig, configDir); err != nil {
		return nil, err
	}

	return cfg.CliConfig, nil
}

// Cli performs initial CLI configuration.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if cmdCtx.Cli.ConfigPath == "" {
		cmdCtx.Cli.ConfigPath = os.Getenv(configPathEnvName)
	}

	var err error
	if cmdCtx.Cli.ConfigPath != "" {
		if _, err = os.Stat(cmdCtx.Cli.ConfigPath); err != nil {
			return fmt.Errorf("specified path to the configuration file is invalid: %s", err)
		}
	} else {
		// We start looking for config in the current directory, going down to root directory.
		if cmdCtx.Cli.ConfigPath, err = getConfigPath(ConfigName); err != nil {
			return fmt.Errorf("failed to get genproject config: %s", err)
		}
	}

	if cmdCtx.Cli.ConfigPath != "" {
		if cmdCtx.Cli.ConfigPath, err = filepath.Abs(cmdCtx.Cli.ConfigPath); err != nil {
			return fmt.Errorf("cannot determine config file path: %s", err)
		}
		cmdCtx.Cli.ConfigDir = filepath.Dir(cmdCtx.Cli.ConfigPath)
	} else if cmdCtx.Cli.ConfigDir, err = os.Getwd(); err != nil {
		return err
	}

	return nil
}

// Logging sets up the log handlers: console output and, if configured, a rotated
// log file. The returned closer must be closed on exit.
func Logging(cmdCtx *cmdcontext.CmdCtx, cliOpts *config.CliOpts) (io.Closer, error) {
	level := log.InfoLevel
	if cliOpts.Log != nil && cliOpts.Log.Level != "" {
		var err error
		if level, err = log.ParseLevel(cliOpts.Log.Level); err != nil {
			return nil, fmt.Errorf("bad log level %q: %s", cliOpts.Log.Level, err)
		}
	}
	if cmdCtx.Cli.Verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	if cliOpts.Log == nil || cliOpts.Log.File == "" {
		log.SetHandler(cli.Default)
		return nil, nil
	}

	if err := util.CreateDirectory(filepath.Dir(cliOpts.Log.File), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %s", err)
	}
	fileLogger := runlog.NewLogger(runlog.LoggerOpts{
		Filename:   cliOpts.Log.File,
		MaxSize:    cliOpts.Log.MaxSize,
		MaxAge:     cliOpts.Log.MaxAge,
		MaxBackups: cliOpts.Log.MaxBackups,
	})
	log.SetHandler(multi.New(cli.Default, fileLogger.Handler()))
	return fileLogger, nil
}

// getConfigPath looks for the path to the genproject.yaml configuration file,
// looking through all directories from the current one to the root.
func getConfigPath(configName string) (string, error) {
	curDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to detect current directory: %s", err)
	}

	for {
		configPath, err := util.GetYamlFileName(filepath.Join(curDir, configName), true)
		if err == nil {
			return configPath, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}

		parentDir := filepath.Dir(curDir)
		if parentDir == curDir {
			break
		}
		curDir = parentDir
	}

	return "", nil
}
