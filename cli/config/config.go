package config

// Config used to store all information from the
// genproject.yaml configuration file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"genproject" yaml:"genproject"`
}

// CliOpts stores information about genproject configuration.
// Filled in when parsing the genproject.yaml configuration file.
//
// genproject.yaml file format:
// genproject:
//   templates:
//     - path: path/to
//   defaults:
//     author_name: string
//     author_email: string
//   log:
//     file: path
//     level: info
//     maxsize: num (MB)
//     maxage: num (Days)
//     maxbackups: num

// TemplateOpts contains configuration for project templates.
type TemplateOpts struct {
	// Path is a directory to search template in.
	Path string `mapstructure:"path" yaml:"path"`
}

// LogOpts is used to store generator log options.
type LogOpts struct {
	// File is a path of the file the generation log is duplicated to.
	// Empty value disables file logging.
	File string `mapstructure:"file" yaml:"file,omitempty"`
	// Level is a minimal level of log messages: debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`
	// MaxSize is a maximum size in MB of the log file before
	// it gets rotated.
	MaxSize int `mapstructure:"maxsize" yaml:"maxsize"`
	// MaxAge is the maximum number of days to retain old log files
	// based on the timestamp encoded in their filename.
	MaxAge int `mapstructure:"maxage" yaml:"maxage"`
	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int `mapstructure:"maxbackups" yaml:"maxbackups"`
}

// CliOpts is used to store templates, defaults and log options.
type CliOpts struct {
	// Templates options.
	Templates []TemplateOpts `mapstructure:"templates" yaml:"templates"`
	// Defaults overrides default values of template variables, by variable key.
	Defaults map[string]string `mapstructure:"defaults" yaml:"defaults,omitempty"`
	// Log is a struct that contains log options.
	Log *LogOpts `mapstructure:"log" yaml:"log"`
}
