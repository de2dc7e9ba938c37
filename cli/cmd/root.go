package cmd

import (
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/butler-team/genproject/cli/cmdcontext"
	"github.com/butler-team/genproject/cli/config"
	"github.com/butler-team/genproject/cli/configure"
	"github.com/spf13/cobra"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	cliOpts *config.CliOpts
	rootCmd *cobra.Command
	// logCloser closes the log file if file logging is configured.
	logCloser io.Closer
	// exitCode is set by a failed command.
	exitCode int
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "genproject",
		Short: "Project generator",
		Long: "Generate a new backend project from a template, replacing template " +
			"placeholders in file contents and names",
		Example: `$ genproject generate --name weather-api
  $ genproject vars
  $ genproject init`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose output")

	rootCmd.AddCommand(
		NewVersionCmd(),
		NewCompletionCmd(),
		NewGenerateCmd(),
		NewVarsCmd(),
		NewInitCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	InitRoot()
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		exitCode = 1
	}
	if logCloser != nil {
		logCloser.Close()
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// InitRoot initializes global flags, configures CLI and logging.
func InitRoot() {
	rootCmd = NewCmdRoot()
	rootCmd.ParseFlags(os.Args)

	if err := configure.Cli(&cmdCtx); err != nil {
		log.Fatalf("Failed to configure genproject: %s", err)
	}

	var err error
	cliOpts, err = configure.GetCliOpts(cmdCtx.Cli.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to get genproject configuration: %s", err)
	}

	if logCloser, err = configure.Logging(&cmdCtx, cliOpts); err != nil {
		log.Fatalf("Failed to configure logging: %s", err)
	}
}
